package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssignmentTitle(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  TitleParts
	}{
		{
			name:  "three segments",
			value: "CS101 | Essay | Climate Change",
			want:  TitleParts{Course: "CS101", TaskType: "Essay", Name: "Climate Change"},
		},
		{
			name:  "two segments",
			value: "CS101 | Climate Change",
			want:  TitleParts{Course: "CS101", TaskType: "", Name: "Climate Change"},
		},
		{
			name:  "single segment",
			value: "Climate Change",
			want:  TitleParts{Course: "", TaskType: "", Name: "Climate Change"},
		},
		{
			name:  "empty segments collapse",
			value: " | Essay | ",
			want:  TitleParts{Name: " | Essay | "},
		},
		{
			name:  "empty title",
			value: "",
			want:  TitleParts{Name: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAssignmentTitle(tt.value))
		})
	}
}

func TestBuildAssignmentTitle(t *testing.T) {
	tests := []struct {
		name     string
		course   string
		taskType string
		title    string
		want     string
	}{
		{
			name:     "all segments",
			course:   "CS101",
			taskType: "Essay",
			title:    "Climate Change",
			want:     "CS101 | Essay | Climate Change",
		},
		{
			name:   "course and title",
			course: "CS101",
			title:  "Climate Change",
			want:   "CS101 | Climate Change",
		},
		{
			name:  "title only",
			title: "Climate Change",
			want:  "Climate Change",
		},
		{
			name:     "segments are trimmed",
			course:   "  CS101  ",
			taskType: "Essay",
			title:    "Climate Change ",
			want:     "CS101 | Essay | Climate Change",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildAssignmentTitle(tt.course, tt.taskType, tt.title))
		})
	}
}

func TestTitleRoundTrip(t *testing.T) {
	built := BuildAssignmentTitle("CS101", "Essay", "Climate Change")
	parsed := ParseAssignmentTitle(built)
	assert.Equal(t, "CS101", parsed.Course)
	assert.Equal(t, "Essay", parsed.TaskType)
	assert.Equal(t, "Climate Change", parsed.Name)
}
