package netx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadPresignedPost_SendsFieldsAndFile(t *testing.T) {
	var gotFields map[string][]string
	var gotFile []byte
	var gotFilename string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = r.MultipartForm.Value

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		gotFilename = hdr.Filename
		gotFile, err = io.ReadAll(f)
		require.NoError(t, err)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	fields := map[string]string{"key": "user-profiles/1/cat.jpg", "policy": "abc"}
	err := UploadPresignedPost(srv.Client(), srv.URL, fields, "cat.jpg", []byte("image-bytes"))
	require.NoError(t, err)

	require.Equal(t, "cat.jpg", gotFilename)
	require.Equal(t, []byte("image-bytes"), gotFile)
	require.Equal(t, []string{"user-profiles/1/cat.jpg"}, gotFields["key"])
	require.Equal(t, []string{"abc"}, gotFields["policy"])
}

func TestUploadPresignedPost_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "access denied", http.StatusForbidden)
	}))
	defer srv.Close()

	err := UploadPresignedPost(srv.Client(), srv.URL, nil, "cat.jpg", []byte("x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}
