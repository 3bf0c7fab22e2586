package googleworkspace

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/bornholm/retrospect/internal/core/model"
	"github.com/pkg/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func TestFilterByDate(t *testing.T) {
	r, err := model.ParseDateRange("2024-01-01", "2024-01-03")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	files := []*drive.File{
		{Id: "1", Name: "2024年01月02日水曜日"},
		{Id: "2", Name: "2024年01月03日木曜日"},
		{Id: "3", Name: "invalid_name"},
		{Id: "4", Name: "2024年01月04日金曜日"},
		{Id: "5", Name: "2023年12月31日日曜日"},
		{Id: "6", Name: "2024年13月01日"},
	}

	expected := []model.DocumentRef{
		{ID: "1", Name: "2024年01月02日水曜日"},
		{ID: "2", Name: "2024年01月03日木曜日"},
	}

	documents := filterByDate(context.Background(), files, r)

	if !reflect.DeepEqual(expected, documents) {
		t.Errorf("documents: expected '%v', got '%v'", expected, documents)
	}

	// Same upstream response, same result
	again := filterByDate(context.Background(), files, r)
	if !reflect.DeepEqual(documents, again) {
		t.Errorf("documents: expected identical results on repeated filtering, got '%v' then '%v'", documents, again)
	}
}

func TestFilterByDatePreservesStoreOrder(t *testing.T) {
	r, err := model.ParseDateRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Deliberately not sorted by date
	files := []*drive.File{
		{Id: "1", Name: "2024年01月20日"},
		{Id: "2", Name: "2024年01月05日"},
		{Id: "3", Name: "2024年01月12日"},
	}

	documents := filterByDate(context.Background(), files, r)

	if e, g := 3, len(documents); e != g {
		t.Fatalf("len(documents): expected '%d', got '%d'", e, g)
	}

	for i, id := range []string{"1", "2", "3"} {
		if e, g := id, documents[i].ID; e != g {
			t.Errorf("documents[%d].ID: expected '%s', got '%s'", i, e, g)
		}
	}
}

func TestLocatorLocate(t *testing.T) {
	var query string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/files") {
			http.NotFound(w, r)
			return
		}

		query = r.URL.Query().Get("q")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"files":[{"id":"1","name":"2024年01月02日水曜日"},{"id":"2","name":"notes"}]}`)
	}))
	defer server.Close()

	locator := NewLocator(newTestDriveService(t, server))

	r, err := model.ParseDateRange("2024-01-01", "2024-01-03")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	documents := locator.Locate(context.Background(), "folder-123", r)

	if e, g := 1, len(documents); e != g {
		t.Fatalf("len(documents): expected '%d', got '%d'", e, g)
	}

	if e, g := "1", documents[0].ID; e != g {
		t.Errorf("documents[0].ID: expected '%s', got '%s'", e, g)
	}

	for _, part := range []string{"'folder-123' in parents", "mimeType='application/vnd.google-apps.document'", "trashed=false"} {
		if !strings.Contains(query, part) {
			t.Errorf("query: expected '%s' to contain '%s'", query, part)
		}
	}
}

func TestLocatorLocateListingFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	locator := NewLocator(newTestDriveService(t, server))

	r, err := model.ParseDateRange("2024-01-01", "2024-01-03")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	documents := locator.Locate(context.Background(), "folder-123", r)

	if e, g := 0, len(documents); e != g {
		t.Errorf("len(documents): expected '%d', got '%d'", e, g)
	}
}

func newTestDriveService(t *testing.T, server *httptest.Server) *drive.Service {
	t.Helper()

	service, err := drive.NewService(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return service
}
