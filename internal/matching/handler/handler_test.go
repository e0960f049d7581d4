package handler

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creatorhub_backend/internal/matching/domain"
)

func TestParseMatchID(t *testing.T) {
	creatorID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	brandID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	gotCreator, gotBrand, ok := parseMatchID(domain.MatchID(creatorID, brandID))
	if !ok {
		t.Fatal("expected a canonical composite id to parse")
	}
	if gotCreator != creatorID || gotBrand != brandID {
		t.Fatalf("expected %s/%s, got %s/%s", creatorID, brandID, gotCreator, gotBrand)
	}

	bad := []string{
		"",
		creatorID.String(),
		creatorID.String() + "_" + brandID.String(),
		creatorID.String() + "-" + brandID.String() + "x",
		"not-a-uuid-at-all-ooooooooooooooooo-22222222-2222-2222-2222-222222222222",
	}
	for _, id := range bad {
		if _, _, ok := parseMatchID(id); ok {
			t.Errorf("expected %q to be rejected", id)
		}
	}
}

func TestParsePositiveInt(t *testing.T) {
	if n, err := parsePositiveInt("25"); err != nil || n != 25 {
		t.Fatalf("expected 25, got %d (%v)", n, err)
	}
	if _, err := parsePositiveInt("-1"); err == nil {
		t.Fatal("expected negative values rejected")
	}
	if _, err := parsePositiveInt("abc"); err == nil {
		t.Fatal("expected non-numeric values rejected")
	}
}

func queryContext(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c, rec
}

func TestParseQueryOptions_ExcludeMatchedPassesThroughUnset(t *testing.T) {
	h := &Handler{}

	c, _ := queryContext(t, "")
	opts, ok := h.parseQueryOptions(c)
	if !ok {
		t.Fatal("expected empty query to parse")
	}
	if opts.ExcludeMatched != nil || opts.MinScore != nil {
		t.Fatalf("expected absent params to stay unset, got %+v", opts)
	}

	c, _ = queryContext(t, "excludeMatched=false&minScore=0")
	opts, ok = h.parseQueryOptions(c)
	if !ok {
		t.Fatal("expected explicit params to parse")
	}
	if opts.ExcludeMatched == nil || *opts.ExcludeMatched {
		t.Fatalf("expected excludeMatched=false carried through, got %+v", opts.ExcludeMatched)
	}
	if opts.MinScore == nil || *opts.MinScore != 0 {
		t.Fatalf("expected an explicit zero minScore carried through, got %+v", opts.MinScore)
	}
}

func TestParseQueryOptions_RejectsBadExcludeMatched(t *testing.T) {
	h := &Handler{}

	c, rec := queryContext(t, "excludeMatched=maybe")
	if _, ok := h.parseQueryOptions(c); ok {
		t.Fatal("expected a non-boolean excludeMatched to be rejected")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestParseStatuses(t *testing.T) {
	if got := parseStatuses(""); got != nil {
		t.Fatalf("expected nil for an empty filter, got %v", got)
	}
	got := parseStatuses("discovered, contacted ,,closed_won")
	want := []string{"discovered", "contacted", "closed_won"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
