package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionMenu = "menu"
	actionGeo  = "geo"
	actionEng  = "eng"
)

// Menu sub-actions.
const (
	menuHome = "home"
	menuGeo  = "geo"
	menuEng  = "eng"
)

// Geography sub-actions.
const (
	geoStart   = "start"
	geoAnswer  = "ans"
	geoNext    = "next"
	geoEnd     = "end"
	geoReview  = "review"
	geoRestart = "restart"
)

// English sub-actions.
const (
	engStart  = "start"
	engTile   = "tile"
	engBlank  = "blank"
	engPlaced = "placed"
	engCheck  = "check"
	engReset  = "reset"
	engNext   = "next"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// sub returns the sub-action, the first parameter.
func (cd callbackData) sub() string {
	return cd.param(0)
}

func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, false
	}
	return n, true
}

// gameRef identifies the question or exercise a button belongs to.
type gameRef struct {
	SessionID string
	Seq       int
}

// ref reads a session id and sequence number from params 1 and 2.
func (cd callbackData) ref() (gameRef, bool) {
	seq, ok := cd.intParam(2)
	if !ok || cd.param(1) == "" {
		return gameRef{}, false
	}
	return gameRef{SessionID: cd.param(1), Seq: seq}, true
}

func (r gameRef) params(sub string, extra ...int) []string {
	params := []string{sub, r.SessionID, strconv.Itoa(r.Seq)}
	for _, v := range extra {
		params = append(params, strconv.Itoa(v))
	}
	return params
}

func buildMenuCallback(sub string) string {
	return callbackData{Action: actionMenu, Params: []string{sub}}.encode()
}

func buildGeoStartCallback(kind string) string {
	return callbackData{Action: actionGeo, Params: []string{geoStart, kind}}.encode()
}

// buildGeoAnswerCallback builds callback data for picking option i of a question.
func buildGeoAnswerCallback(ref gameRef, option int) string {
	return callbackData{Action: actionGeo, Params: ref.params(geoAnswer, option)}.encode()
}

func buildGeoNextCallback(ref gameRef) string {
	return callbackData{Action: actionGeo, Params: ref.params(geoNext)}.encode()
}

func buildGeoEndCallback(ref gameRef) string {
	return callbackData{Action: actionGeo, Params: ref.params(geoEnd)}.encode()
}

func buildGeoReviewCallback(sessionID string) string {
	return callbackData{Action: actionGeo, Params: []string{geoReview, sessionID}}.encode()
}

func buildGeoRestartCallback() string {
	return callbackData{Action: actionGeo, Params: []string{geoRestart}}.encode()
}

func buildEngStartCallback(mode string) string {
	return callbackData{Action: actionEng, Params: []string{engStart, mode}}.encode()
}

// buildEngBoardCallback builds callback data for a board operation. value is
// a tile id or a position, depending on sub.
func buildEngBoardCallback(sub string, ref gameRef, value ...int) string {
	return callbackData{Action: actionEng, Params: ref.params(sub, value...)}.encode()
}
