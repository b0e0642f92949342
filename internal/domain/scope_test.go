package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestScope_Matches(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	p := &Post{ID: 1, UserID: owner, CategoryID: 3}

	if !AllPosts().Matches(p) {
		t.Error("AllPosts should match every post")
	}
	if !ByCategory(3).Matches(p) {
		t.Error("ByCategory(3) should match")
	}
	if ByCategory(4).Matches(p) {
		t.Error("ByCategory(4) should not match")
	}
	if !ByOwner(owner).Matches(p) {
		t.Error("ByOwner(owner) should match")
	}
	if ByOwner(uuid.New()).Matches(p) {
		t.Error("ByOwner(other) should not match")
	}
}

func TestScope_String(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f1c1c43-2d3b-4a43-9f0e-6b2c5b0c8d11")

	if got := AllPosts().String(); got != "all" {
		t.Errorf("AllPosts().String() = %q", got)
	}
	if got := ByCategory(7).String(); got != "category:7" {
		t.Errorf("ByCategory(7).String() = %q", got)
	}
	if got := ByOwner(id).String(); got != "owner:"+id.String() {
		t.Errorf("ByOwner().String() = %q", got)
	}
}

func TestScopeFromRoute(t *testing.T) {
	t.Parallel()

	requester := uuid.New()
	catID := int64(2)
	zeroCat := int64(0)
	userID := uuid.New()
	nilUser := uuid.Nil

	tests := []struct {
		name      string
		params    RouteParams
		requester uuid.UUID
		want      Scope
		wantErr   error
		wantField string
	}{
		{name: "no params", want: AllPosts()},
		{name: "no params anonymous", requester: uuid.Nil, want: AllPosts()},
		{name: "category", params: RouteParams{CategoryID: &catID}, want: ByCategory(2)},
		{name: "user", params: RouteParams{UserID: &userID}, want: ByOwner(userID)},
		{name: "mine", params: RouteParams{Mine: true}, requester: requester, want: ByOwner(requester)},
		{name: "mine anonymous", params: RouteParams{Mine: true}, wantErr: ErrUnauthorized},
		{name: "zero category", params: RouteParams{CategoryID: &zeroCat}, wantErr: ErrValidation, wantField: "category_id"},
		{name: "nil user", params: RouteParams{UserID: &nilUser}, wantErr: ErrValidation, wantField: "user_id"},
		{
			name:      "category and user",
			params:    RouteParams{CategoryID: &catID, UserID: &userID},
			wantErr:   ErrValidation,
			wantField: "scope",
		},
		{
			name:      "user and mine",
			params:    RouteParams{UserID: &userID, Mine: true},
			requester: requester,
			wantErr:   ErrValidation,
			wantField: "scope",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ScopeFromRoute(tt.params, tt.requester)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if tt.wantField != "" {
					var ve *ValidationError
					if !errors.As(err, &ve) || !ve.HasField(tt.wantField) {
						t.Fatalf("expected validation error on %q, got %v", tt.wantField, err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ScopeFromRoute() = %v, want %v", got, tt.want)
			}
		})
	}
}
