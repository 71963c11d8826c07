package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

const geminiTextReply = `{"candidates":[{"content":{"parts":[{"text":"这是答案"}]}}]}`
const geminiImageReply = `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":"T1VUUFVU"}}]}}]}`

func TestAskHandler(t *testing.T) {
	d, _ := newTestDeps(t)
	d.AI = testAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(geminiTextReply))
	})
	r := newTestRouter(d)

	rec := doJSON(t, r, http.MethodPost, "/api/ask", askRequest{Query: "golang"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "这是答案", decodeJSON[askResponse](t, rec).Answer)
}

func TestAskHandlerRejectsEmptyQuery(t *testing.T) {
	d, _ := newTestDeps(t)
	d.AI = testAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for an empty query")
	})
	r := newTestRouter(d)

	rec := doJSON(t, r, http.MethodPost, "/api/ask", askRequest{Query: "   "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskHandlerUpstreamFailureStillAnswers(t *testing.T) {
	d, _ := newTestDeps(t)
	d.AI = testAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r := newTestRouter(d)

	// The assistant converts failures into a user-facing answer, so the
	// endpoint never surfaces an upstream error status.
	rec := doJSON(t, r, http.MethodPost, "/api/ask", askRequest{Query: "golang"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, decodeJSON[askResponse](t, rec).Answer)
}

func TestEditImageHandler(t *testing.T) {
	d, _ := newTestDeps(t)
	d.AI = testAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(geminiImageReply))
	})
	r := newTestRouter(d)

	rec := doJSON(t, r, http.MethodPost, "/api/image/edit", imageEditRequest{
		Image:  "data:image/png;base64,SU5QVVQ=",
		Prompt: "make it blue",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "data:image/png;base64,T1VUUFVU", decodeJSON[imageEditResponse](t, rec).Image)
}

func TestEditImageHandlerValidation(t *testing.T) {
	d, _ := newTestDeps(t)
	d.AI = testAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for an invalid request")
	})
	r := newTestRouter(d)

	rec := doJSON(t, r, http.MethodPost, "/api/image/edit", imageEditRequest{Prompt: "x"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/image/edit", imageEditRequest{Image: "data:image/png;base64,SU5QVVQ="})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/image/edit", imageEditRequest{
		Image:  "https://not-a-data-url.example/a.png",
		Prompt: "x",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditImageHandlerUpstreamFailure(t *testing.T) {
	d, _ := newTestDeps(t)
	d.AI = testAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	r := newTestRouter(d)

	rec := doJSON(t, r, http.MethodPost, "/api/image/edit", imageEditRequest{
		Image:  "data:image/png;base64,SU5QVVQ=",
		Prompt: "x",
	})
	require.Equal(t, http.StatusBadGateway, rec.Code)
}
