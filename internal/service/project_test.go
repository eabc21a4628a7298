package service

import (
	"errors"
	"testing"

	"LabSite/internal/dto"
	"LabSite/model"
)

func TestValidateProjectState(t *testing.T) {
	cases := []struct {
		name    string
		project model.Project
		ok      bool
	}{
		{"current", model.Project{Title: "t", Status: model.ProjectStatusCurrent}, true},
		{"completed with year", model.Project{Title: "t", Status: model.ProjectStatusCompleted, Year: 2024}, true},
		{"completed missing year", model.Project{Title: "t", Status: model.ProjectStatusCompleted}, false},
		{"award complete", model.Project{Title: "t", Status: model.ProjectStatusAward, Year: 2023, AwardName: "Best Paper"}, true},
		{"award missing year", model.Project{Title: "t", Status: model.ProjectStatusAward, AwardName: "Best Paper"}, false},
		{"award missing name", model.Project{Title: "t", Status: model.ProjectStatusAward, Year: 2023}, false},
		{"unknown status", model.Project{Title: "t", Status: "archived"}, false},
		{"blank title", model.Project{Title: "  ", Status: model.ProjectStatusCurrent}, false},
	}
	for _, tc := range cases {
		err := validateProjectState(&tc.project)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("%s: expect error", tc.name)
			} else if !errors.Is(err, ErrValidation) {
				t.Errorf("%s: expect validation error, got %v", tc.name, err)
			}
		}
	}
}

func TestApplyProjectRequestPartial(t *testing.T) {
	project := model.Project{
		Title:       "old title",
		Number:      3,
		Description: "old description",
		Status:      model.ProjectStatusCurrent,
	}
	title := "new title"
	applyProjectRequest(&project, &dto.ProjectRequest{Title: &title})

	if project.Title != "new title" {
		t.Fatalf("expect title updated, got %q", project.Title)
	}
	if project.Number != 3 || project.Description != "old description" {
		t.Fatal("omitted fields must keep their values")
	}
}

func TestApplyProjectRequestClearsAwardName(t *testing.T) {
	project := model.Project{
		Title:     "t",
		Status:    model.ProjectStatusAward,
		Year:      2023,
		AwardName: "Best Paper",
	}
	status := model.ProjectStatusCompleted
	applyProjectRequest(&project, &dto.ProjectRequest{Status: &status})

	if project.AwardName != "" {
		t.Fatalf("awardName must be cleared when status leaves award, got %q", project.AwardName)
	}
	if project.Year != 2023 {
		t.Fatal("year must survive the status change")
	}
}

func TestApplyProjectRequestExplicitEmpty(t *testing.T) {
	project := model.Project{Title: "t", Status: model.ProjectStatusCurrent, Link: "https://example.com"}
	link := ""
	applyProjectRequest(&project, &dto.ProjectRequest{Link: &link})

	if project.Link != "" {
		t.Fatalf("explicit empty value must clear the field, got %q", project.Link)
	}
}

func TestIsProjectStatus(t *testing.T) {
	for _, s := range []string{model.ProjectStatusCurrent, model.ProjectStatusCompleted, model.ProjectStatusAward} {
		if !isProjectStatus(s) {
			t.Errorf("expect %q to be a valid status", s)
		}
	}
	if isProjectStatus("archived") {
		t.Error("expect unknown status rejected")
	}
}
