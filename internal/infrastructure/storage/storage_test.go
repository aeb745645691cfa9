package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeyFromPublicURL(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		bucket string
		want   string
	}{
		{
			"plain public url",
			"https://xyz.supabase.co/storage/v1/object/public/listing-images/1700000000-bread.jpg",
			"listing-images",
			"1700000000-bread.jpg",
		},
		{
			"nested key",
			"https://xyz.supabase.co/storage/v1/object/public/listing-images/u1/bread.jpg",
			"listing-images",
			"u1/bread.jpg",
		},
		{
			"query string stripped",
			"https://xyz.supabase.co/storage/v1/object/public/listing-images/bread.jpg?t=123",
			"listing-images",
			"bread.jpg",
		},
		{
			"wrong bucket",
			"https://xyz.supabase.co/storage/v1/object/public/avatars/bread.jpg",
			"listing-images",
			"",
		},
		{
			"not a storage url",
			"https://example.com/bread.jpg",
			"listing-images",
			"",
		},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ObjectKeyFromPublicURL(tc.url, tc.bucket), tc.name)
	}
}

func TestDeleteObject(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, SecretKey: "service-role-key", Bucket: "listing-images"}
	require.NoError(t, c.DeleteObject(context.Background(), "bread.jpg"))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/storage/v1/object/listing-images/bread.jpg", gotPath)
	assert.Equal(t, "Bearer service-role-key", gotAuth)
}

func TestDeleteObject_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Object not found"}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, SecretKey: "k", Bucket: "listing-images"}
	err := c.DeleteObject(context.Background(), "missing.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestDeleteObjectByURL_WrongBucket(t *testing.T) {
	c := &Client{BaseURL: "https://xyz.supabase.co", SecretKey: "k", Bucket: "listing-images"}
	err := c.DeleteObjectByURL(context.Background(), "https://xyz.supabase.co/storage/v1/object/public/avatars/a.jpg")
	assert.Error(t, err)
}

func TestDeleteObject_MissingConfig(t *testing.T) {
	c := &Client{Bucket: "listing-images"}
	assert.Error(t, c.DeleteObject(context.Background(), "bread.jpg"))
}
