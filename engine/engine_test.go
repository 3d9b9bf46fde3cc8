package engine

import (
	"fmt"
	"testing"

	gomock "github.com/golang/mock/gomock"

	"github.com/kotaroooo0/kanakanji/build"
	"github.com/kotaroooo0/kanakanji/dict"
)

func units(s string) []uint16 {
	u := make([]uint16, 0, len(s))
	for _, r := range s {
		u = append(u, uint16(r))
	}
	return u
}

func testDictionaries() *build.Dictionaries {
	conn := dict.NewConnectionMatrix([]int16{0, 0, 0, 0}, 2)
	b := build.NewDictionaryBuilder(conn)
	b.AddRows(
		build.SourceRow{Reading: units("きょう"), LeftID: 0, RightID: 0, Cost: 100, Surface: units("今日")},
	)
	return b.Build()
}

func TestEngineConvertUsesDecoder(t *testing.T) {
	cases := []struct {
		text string
	}{
		{text: "きょう"},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v", tt.text), func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			mockDecoder := NewMockDecoder(mockCtrl)

			mockDecoder.EXPECT().Decode(tt.text).Return(units(tt.text), nil)

			e := New(testDictionaries(), mockDecoder)
			candidates, _, err := e.Convert(tt.text, 3, 0)
			if err != nil {
				t.Fatalf("Convert returned error: %v", err)
			}
			if len(candidates) == 0 {
				t.Errorf("expected at least one candidate for %q", tt.text)
			}
		})
	}
}

func TestEngineConvertNBestZeroIsEmpty(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockDecoder := NewMockDecoder(mockCtrl)
	// Decode should not even be called when nBest <= 0.

	e := New(testDictionaries(), mockDecoder)
	candidates, bunsetsu, err := e.Convert("きょう", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 0 || len(bunsetsu) != 0 {
		t.Errorf("nBest=0 should yield empty results, got %d candidates, %d bunsetsu", len(candidates), len(bunsetsu))
	}
}

func TestEngineConvertAppliesReadingFilters(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockDecoder := NewMockDecoder(mockCtrl)

	filter := NewMappingReadingFilter(map[string]string{"　": ""}) // strip full-width space
	mockDecoder.EXPECT().Decode("きょう").Return(units("きょう"), nil)

	e := New(testDictionaries(), mockDecoder, WithReadingFilters(filter))
	if _, _, err := e.Convert("きょう　", 1, 0); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
}
