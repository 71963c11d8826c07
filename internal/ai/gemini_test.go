package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/logger"
)

func newServerClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		TextModel:  "text-model",
		ImageModel: "image-model",
		Timeout:    5 * time.Second,
	}, logger.Nop())
}

func textResponse(text string) generateResponse {
	return generateResponse{
		Candidates: []struct {
			Content content `json:"content"`
		}{
			{Content: content{Parts: []part{{Text: text}}}},
		},
	}
}

func TestAsk(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest

	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		require.NoError(t, json.NewEncoder(w).Encode(textResponse("你好！")))
	})

	answer := c.Ask(context.Background(), "什么是 Go?")
	require.Equal(t, "你好！", answer)
	require.Equal(t, "/v1beta/models/text-model:generateContent", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.NotNil(t, gotReq.SystemInstruction)
	require.Len(t, gotReq.Contents, 1)
	require.Equal(t, "什么是 Go?", gotReq.Contents[0].Parts[0].Text)
}

func TestAskWithoutKey(t *testing.T) {
	c := New(Config{}, logger.Nop())
	require.False(t, c.Enabled())
	require.Equal(t, msgMissingKey, c.Ask(context.Background(), "hi"))
}

func TestAskRemoteFailure(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	require.Equal(t, msgCallFailed, c.Ask(context.Background(), "hi"))
}

func TestAskEmptyCandidates(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(generateResponse{}))
	})
	require.Equal(t, msgEmptyReply, c.Ask(context.Background(), "hi"))
}

func TestEditImage(t *testing.T) {
	var gotReq generateRequest

	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models/image-model:generateContent", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		resp := generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{
					{InlineData: &inlineData{MimeType: "image/png", Data: "T1VUUFVU"}},
				}}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	out, err := c.EditImage(context.Background(), "data:image/jpeg;base64,SU5QVVQ=", "make it blue")
	require.NoError(t, err)
	require.Equal(t, "data:image/png;base64,T1VUUFVU", out)

	require.Len(t, gotReq.Contents, 1)
	parts := gotReq.Contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	require.Equal(t, "image/jpeg", parts[0].InlineData.MimeType)
	require.Equal(t, "SU5QVVQ=", parts[0].InlineData.Data)
	require.Equal(t, "make it blue", parts[1].Text)
}

func TestEditImageNoImageInReply(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(textResponse("cannot do that")))
	})

	out, err := c.EditImage(context.Background(), "data:image/png;base64,SU5QVVQ=", "x")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestEditImageRejectsNonDataURL(t *testing.T) {
	c := New(Config{APIKey: "k"}, logger.Nop())

	for _, in := range []string{"", "https://example.com/a.png", "data:image/png,not-base64-marker"} {
		_, err := c.EditImage(context.Background(), in, "x")
		require.ErrorIs(t, err, domain.ErrValidation, "input %q", in)
	}
}

func TestEditImageWithoutKey(t *testing.T) {
	c := New(Config{}, logger.Nop())
	_, err := c.EditImage(context.Background(), "data:image/png;base64,SU5QVVQ=", "x")
	require.ErrorIs(t, err, domain.ErrRemote)
}

func TestEditImageRemoteFailure(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := c.EditImage(context.Background(), "data:image/png;base64,SU5QVVQ=", "x")
	require.ErrorIs(t, err, domain.ErrRemote)
}
