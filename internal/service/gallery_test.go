package service

import (
	"errors"
	"testing"

	"LabSite/internal/dto"
	"LabSite/model"
)

func TestValidateGalleryEventState(t *testing.T) {
	cases := []struct {
		name  string
		event model.GalleryEvent
		ok    bool
	}{
		{"complete", model.GalleryEvent{Title: "t", Date: "2024-06-10"}, true},
		{"blank title", model.GalleryEvent{Title: " ", Date: "2024-06-10"}, false},
		{"blank date", model.GalleryEvent{Title: "t", Date: ""}, false},
	}
	for _, tc := range cases {
		err := validateGalleryEventState(&tc.event)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expect validation error, got %v", tc.name, err)
		}
	}
}

func TestGalleryUpdateCannotBlankDate(t *testing.T) {
	event := model.GalleryEvent{Title: "t", Date: "2024-06-10"}
	empty := ""
	applyGalleryEventRequest(&event, &dto.GalleryEventRequest{Date: &empty})

	if err := validateGalleryEventState(&event); !errors.Is(err, ErrValidation) {
		t.Fatalf("expect blanked date rejected, got %v", err)
	}
}
