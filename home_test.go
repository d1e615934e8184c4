package routemap

import(
	"errors"
	"testing"
)

func TestInferHome(t *testing.T) {
	tests := []struct{
		Legs   []Leg
		Home     string
	}{
		{legs("A","X", "A","Y", "B","Z"),           "A"},
		{legs("B","A", "A","B", "A","C"),           "A"},
		{legs("B","X", "A","X", "A","Y", "B","Y"),  "B"}, // tie; B was seen first
		{legs("C","X"),                             "C"},
	}

	for i,test := range tests {
		home,err := InferHome(test.Legs)
		if err != nil {
			t.Errorf("[%d] unexpected err: %v", i, err)
		} else if home != test.Home {
			t.Errorf("[%d] expected %q, got %q", i, test.Home, home)
		}
	}
}

func TestInferHomeEmpty(t *testing.T) {
	if _,err := InferHome(nil); !errors.Is(err, ErrEmptyLogbook) {
		t.Errorf("expected ErrEmptyLogbook, got %v", err)
	}
}
