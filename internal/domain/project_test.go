package domain

import (
	"errors"
	"testing"
)

func TestProject_Visual(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		want    VisualKind
	}{
		{"video only", Project{Video: "/v.mp4"}, VisualVideo},
		{"video wins over image", Project{Video: "/v.mp4", Image: "/i.jpg"}, VisualVideo},
		{"video wins over everything", Project{Video: "/v.mp4", Image: "/i.jpg", Quote: "q"}, VisualVideo},
		{"image only", Project{Image: "/i.jpg"}, VisualImage},
		{"image wins over quote", Project{Image: "/i.jpg", Quote: "q"}, VisualImage},
		{"quote only", Project{Quote: "still water"}, VisualQuote},
		{"nothing", Project{}, VisualEmpty},
		{"blank strings are absent", Project{Video: " ", Image: "\t", Quote: ""}, VisualEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.project.Visual(); got != tt.want {
				t.Errorf("Visual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisualKind_String(t *testing.T) {
	want := map[VisualKind]string{
		VisualVideo: "video",
		VisualImage: "image",
		VisualQuote: "quote",
		VisualEmpty: "empty",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), s)
		}
	}
}

func TestProject_Validate(t *testing.T) {
	valid := Project{
		ID:          "a",
		Title:       "Cabin",
		Date:        "2023",
		Description: "A small cabin.",
		Link:        "/garden/cabin",
	}
	if err := valid.Validate(0); err != nil {
		t.Fatalf("Validate() on valid project = %v", err)
	}

	missing := Project{ID: "b"}
	err := missing.Validate(3)
	if err == nil {
		t.Fatal("Validate() expected error for missing fields")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %T, want *ValidationError", err)
	}
	if verr.Index != 3 || verr.ID != "b" {
		t.Errorf("ValidationError = %+v, want index 3 id b", verr)
	}
}

func TestValidateCollection_Duplicates(t *testing.T) {
	p := Project{ID: "a", Title: "t", Date: "d", Description: "x", Link: "/l"}
	err := ValidateCollection([]Project{p, p})
	if err == nil {
		t.Fatal("ValidateCollection() expected duplicate id error")
	}
	want := `project[1] "a": id duplicates project[0]`
	if err.Error() != want {
		t.Errorf("ValidateCollection() = %q, want %q", err.Error(), want)
	}
}

func TestValidateCollection_Empty(t *testing.T) {
	if err := ValidateCollection(nil); err != nil {
		t.Errorf("ValidateCollection(nil) = %v, want nil", err)
	}
}
