package types

import (
	"encoding/json"
	"testing"
)

func TestGenderUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Gender
		wantErr bool
	}{
		{name: "male", input: `"MALE"`, want: GenderMale},
		{name: "female", input: `"FEMALE"`, want: GenderFemale},
		{name: "empty is left to the validator", input: `""`, want: ""},
		{name: "lower case is rejected", input: `"male"`, wantErr: true},
		{name: "unknown value", input: `"OTHER"`, wantErr: true},
		{name: "not a string", input: `1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var g Gender
			err := json.Unmarshal([]byte(tt.input), &g)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s, got gender %q", tt.input, g)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g != tt.want {
				t.Errorf("gender = %q, want %q", g, tt.want)
			}
		})
	}
}

func TestStudentDecode(t *testing.T) {
	t.Parallel()

	var s Student
	body := `{"id":7,"name":"Ann","email":"a@x.com","gender":"FEMALE"}`
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := Student{ID: 7, Name: "Ann", Email: "a@x.com", Gender: GenderFemale}
	if s != want {
		t.Errorf("student = %+v, want %+v", s, want)
	}
}
