package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Veraticus/prodchart/internal/common"
	"github.com/Veraticus/prodchart/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_FetchProducts(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    []model.Product
		wantErr bool
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{"products":[
				{"id":1,"title":"A","category":"cat1","price":9.99},
				{"id":2,"title":"B","category":"cat1"},
				{"id":3,"title":"C","category":"cat2"}
			],"total":3,"skip":0,"limit":30}`,
			want: []model.Product{
				{ID: 1, Title: "A", Category: "cat1"},
				{ID: 2, Title: "B", Category: "cat1"},
				{ID: 3, Title: "C", Category: "cat2"},
			},
		},
		{
			name:   "empty collection",
			status: http.StatusOK,
			body:   `{"products":[]}`,
			want:   []model.Product{},
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"message":"down"}`,
			wantErr: true,
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `not here`,
			wantErr: true,
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `{"products": [`,
			wantErr: true,
		},
		{
			name:    "product without id",
			status:  http.StatusOK,
			body:    `{"products":[{"id":1,"title":"A","category":"cat1"},{"title":"B","category":"cat1"}]}`,
			wantErr: true,
		},
		{
			name:    "product without title",
			status:  http.StatusOK,
			body:    `{"products":[{"id":1,"category":"cat1"}]}`,
			wantErr: true,
		},
		{
			name:    "duplicate id",
			status:  http.StatusOK,
			body:    `{"products":[{"id":1,"title":"A","category":"cat1"},{"id":1,"title":"B","category":"cat2"}]}`,
			wantErr: true,
		},
		{
			name:    "missing products field",
			status:  http.StatusOK,
			body:    `{"items":[]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			source := NewHTTPSource(server.URL, time.Second)
			got, err := source.FetchProducts(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrFetchFailed)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewHTTPSource(url, time.Second).FetchProducts(context.Background())
	assert.ErrorIs(t, err, common.ErrFetchFailed)
}

func TestHTTPSource_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPSource(server.URL, 0).FetchProducts(ctx)
	assert.ErrorIs(t, err, common.ErrFetchFailed)
	assert.ErrorIs(t, err, context.Canceled)
}
