package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrconsole/internal/cli/model"
)

type tokenFunc func() (string, error)

func (f tokenFunc) Token() (string, error) { return f() }

func staticToken(tok string) TokenSource {
	return tokenFunc(func() (string, error) { return tok, nil })
}

func TestClient_SendsTokenVerbatim(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, staticToken("ey.raw.token"), nil, nil)
	require.NoError(t, c.doJSON(context.Background(), http.MethodGet, "/x", nil, nil))

	// the credential goes out exactly as stored, without a Bearer prefix
	assert.Equal(t, "ey.raw.token", gotAuth)
}

func TestClient_NoSessionSendsUnauthenticated(t *testing.T) {
	var hit bool
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	// a token source with nothing stored must not block the request
	noSession := tokenFunc(func() (string, error) { return "", errors.New("no active session: run login first") })
	c := NewClient(ts.URL, noSession, nil, nil)
	require.NoError(t, c.doJSON(context.Background(), http.MethodPost, "/users/login", map[string]string{"email": "a@b.c"}, nil))

	assert.True(t, hit)
	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedInvokesHook(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"token expired"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	cleared := false
	c := NewClient(ts.URL, staticToken("tok"), func() { cleared = true }, nil)
	err := c.doJSON(context.Background(), http.MethodGet, "/mr-content", nil, nil)

	require.Error(t, err)
	var serr *ServerError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusUnauthorized, serr.Status)
	assert.Equal(t, "token expired", serr.Message)
	assert.True(t, cleared, "401 must invoke the unauthorized hook")
}

func TestServerMessage_Shapes(t *testing.T) {
	assert.Equal(t, "boom", serverMessage([]byte(`{"message":"boom"}`)))
	assert.Equal(t, "nope", serverMessage([]byte(`{"error":"nope"}`)))
	assert.Equal(t, "plain text", serverMessage([]byte(" plain text \n")))
}

func TestContentClient_ListAndCreate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			assert.Equal(t, "/mr-content", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "6", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`{"data":[{"id":"c1","name":"Demo","ref_id":"r1","render_type":"GROUND","status":"draft"}],"page":2,"page_size":6,"total":7,"total_pages":2}`))
		case r.Method == http.MethodPost:
			assert.Equal(t, "/mr-content", r.URL.Path)
			_, _ = w.Write([]byte(`{"data":{"id":"c2","name":"New","ref_id":"r2","render_type":"IMAGE","status":"draft"}}`))
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer ts.Close()

	cc := NewContentClient(NewClient(ts.URL, staticToken("t"), nil, nil))

	page, err := cc.List(context.Background(), 2, 6)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Demo", page.Data[0].Name)
	assert.Equal(t, 7, page.Total)

	created, err := cc.Create(context.Background(), model.CreateContentRequest{Name: "New", RenderType: model.RenderTypeImage, Images: []model.KV{}})
	require.NoError(t, err)
	assert.Equal(t, "c2", created.ID)
}

func TestContentClient_GetReturnsBareItem(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mr-content/c1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"c1","name":"Demo","ref_id":"r1","render_type":"GROUND","status":"processed","videos_original":"https://cdn/o.mp4"}`))
	}))
	defer ts.Close()

	cc := NewContentClient(NewClient(ts.URL, staticToken("t"), nil, nil))
	item, err := cc.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/o.mp4", item.VideosOriginal)
}

func TestUsersClient_Login(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"access_token":"tok-1","user":{"id":"u1","email":"a@b.c","role":"admin"}}`))
	}))
	defer ts.Close()

	uc := NewUsersClient(NewClient(ts.URL, nil, nil, nil))
	resp, err := uc.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.AccessToken)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestUploadClient_SignedURLAndPut(t *testing.T) {
	var putBody string
	var putType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/generatesignedurl":
			assert.Equal(t, http.MethodPost, r.Method)
			_, _ = w.Write([]byte(`{"url":"` + serverURL(r) + `/bucket/obj.mp4?sig=abc"}`))
		case "/bucket/obj.mp4":
			assert.Equal(t, http.MethodPut, r.Method)
			putType = r.Header.Get("Content-Type")
			b, _ := io.ReadAll(r.Body)
			putBody = string(b)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	uc := NewUploadClient(NewClient(ts.URL, staticToken("t"), nil, nil))
	url, err := uc.GenerateSignedURL(context.Background(), SignedURLRequest{
		ObjectName:        "experiences/videos/original/1-a.mp4",
		ContentType:       "video/mp4",
		ExpirationMinutes: 30,
	})
	require.NoError(t, err)
	require.Contains(t, url, "?sig=abc")

	body := strings.NewReader("raw-bytes")
	require.NoError(t, uc.PutFile(context.Background(), url, body, int64(body.Len()), "video/mp4"))
	assert.Equal(t, "video/mp4", putType)
	assert.Equal(t, "raw-bytes", putBody)
}

// serverURL reconstructs the test server origin from the incoming request.
func serverURL(r *http.Request) string {
	return "http://" + r.Host
}
