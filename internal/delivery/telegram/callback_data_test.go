package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionID = "01HZY3M7K8Q2W4E6R8T0Y2U4I6"

func TestCallbackData_EncodeDecode(t *testing.T) {
	ref := gameRef{SessionID: testSessionID, Seq: 7}

	tests := []struct {
		name   string
		data   string
		action string
		params []string
	}{
		{"menu", buildMenuCallback(menuGeo), actionMenu, []string{menuGeo}},
		{"geo start", buildGeoStartCallback("fact_to_country"), actionGeo, []string{geoStart, "fact_to_country"}},
		{"geo answer", buildGeoAnswerCallback(ref, 3), actionGeo, []string{geoAnswer, testSessionID, "7", "3"}},
		{"geo next", buildGeoNextCallback(ref), actionGeo, []string{geoNext, testSessionID, "7"}},
		{"geo restart", buildGeoRestartCallback(), actionGeo, []string{geoRestart}},
		{"eng tile", buildEngBoardCallback(engTile, ref, 12), actionEng, []string{engTile, testSessionID, "7", "12"}},
		{"eng check", buildEngBoardCallback(engCheck, ref), actionEng, []string{engCheck, testSessionID, "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.LessOrEqual(t, len(tt.data), 64, "telegram limits callback data to 64 bytes")

			cd := decodeCallback(tt.data)
			assert.Equal(t, tt.action, cd.Action)
			assert.Equal(t, tt.params, cd.Params)
			assert.Equal(t, tt.data, cd.Raw)
		})
	}
}

func TestCallbackData_Ref(t *testing.T) {
	cd := decodeCallback(buildGeoAnswerCallback(gameRef{SessionID: testSessionID, Seq: 2}, 1))

	ref, ok := cd.ref()
	require.True(t, ok)
	assert.Equal(t, gameRef{SessionID: testSessionID, Seq: 2}, ref)

	opt, ok := cd.intParam(3)
	require.True(t, ok)
	assert.Equal(t, 1, opt)

	_, ok = decodeCallback("geo:ans").ref()
	assert.False(t, ok)

	_, ok = decodeCallback("geo:ans:" + testSessionID + ":x").ref()
	assert.False(t, ok)

	assert.Equal(t, "", decodeCallback("menu").sub())
}
