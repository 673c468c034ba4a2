package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefUnmarshal(t *testing.T) {
	var doc struct {
		Gym   Ref   `json:"gym"`
		Video Ref   `json:"video"`
		Empty Ref   `json:"empty"`
		Saved []Ref `json:"saved"`
	}
	body := `{"gym":"gym-1","video":{"_id":"video-9","description":"roof"},"empty":null,"saved":["a",{"_id":"b"}]}`

	require.NoError(t, json.Unmarshal([]byte(body), &doc))

	assert.Equal(t, Ref("gym-1"), doc.Gym)
	assert.Equal(t, Ref("video-9"), doc.Video)
	assert.Equal(t, Ref(""), doc.Empty)
	assert.Equal(t, []string{"a", "b"}, Refs(doc.Saved))
}

func TestRefUnmarshal_Invalid(t *testing.T) {
	var r Ref
	assert.Error(t, json.Unmarshal([]byte(`42`), &r))
}

func TestProfileUnmarshal_AcceptsBareID(t *testing.T) {
	body := `[
		{"_id":"v1","videoUrl":"u1","likes":[],"profile":"profile-3","comments":[{"_id":"c1","text":"nice","profile":"profile-4"}]},
		{"_id":"v2","videoUrl":"u2","likes":[],"profile":{"_id":"profile-5","user":{"_id":"user-5","name":"Alex"},"savedVideos":["v1"]}},
		{"_id":"v3","videoUrl":"u3","likes":[],"profile":null}
	]`

	var videos []Video
	require.NoError(t, json.Unmarshal([]byte(body), &videos))
	require.Len(t, videos, 3)

	require.NotNil(t, videos[0].Profile)
	assert.Equal(t, "profile-3", videos[0].Profile.ID)
	assert.Equal(t, "Unknown User", videos[0].Profile.DisplayName())
	assert.Equal(t, "profile-4", videos[0].Comments[0].Profile.ID)

	assert.Equal(t, "profile-5", videos[1].Profile.ID)
	assert.Equal(t, "Alex", videos[1].Profile.DisplayName())
	assert.Equal(t, []string{"v1"}, Refs(videos[1].Profile.SavedVideos))

	assert.Nil(t, videos[2].Profile)
}

func TestProfileUnmarshal_Invalid(t *testing.T) {
	var p Profile
	assert.Error(t, json.Unmarshal([]byte(`42`), &p))
}
