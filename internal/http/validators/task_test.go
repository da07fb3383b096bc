package validators

import (
	"errors"
	"strings"
	"testing"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func ptr(s string) *string { return &s }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidateCreateTaskRequest_Defaults(t *testing.T) {
	fields, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:    ptr("  Buy milk  "),
		Category: ptr("shopping"),
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fields.Title != "Buy milk" {
		t.Errorf("expected trimmed title, got %q", fields.Title)
	}
	if fields.Category != constants.CategoryShopping {
		t.Errorf("expected category shopping, got %s", fields.Category)
	}
	if fields.Priority != constants.PriorityMedium {
		t.Errorf("expected default priority medium, got %s", fields.Priority)
	}
	if fields.Status != constants.StatusPending {
		t.Errorf("expected default status pending, got %s", fields.Status)
	}
	if fields.Deadline != nil {
		t.Errorf("expected no deadline, got %v", fields.Deadline)
	}
}

func TestValidateCreateTaskRequest_DefaultCategory(t *testing.T) {
	fields, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: ptr("x")}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields.Category != constants.CategoryPersonal {
		t.Errorf("expected default category personal, got %s", fields.Category)
	}
}

func TestValidateCreateTaskRequest_Title(t *testing.T) {
	tests := []struct {
		name    string
		title   *string
		wantErr bool
	}{
		{name: "missing", title: nil, wantErr: true},
		{name: "empty", title: ptr(""), wantErr: true},
		{name: "whitespace only", title: ptr("   \t "), wantErr: true},
		{name: "one char", title: ptr("a"), wantErr: false},
		{name: "exactly 100", title: ptr(strings.Repeat("a", 100)), wantErr: false},
		{name: "100 after trimming", title: ptr("  " + strings.Repeat("a", 100) + "  "), wantErr: false},
		{name: "101", title: ptr(strings.Repeat("a", 101)), wantErr: true},
		{name: "100 multibyte runes", title: ptr(strings.Repeat("é", 100)), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: tt.title}, time.Now())
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if n := len([]rune(fields.Title)); n < 1 || n > 100 {
					t.Errorf("title length %d out of range", n)
				}
				return
			}
			if got := fieldsOf(t, err)["title"]; got != msgTitleLength {
				t.Errorf("expected title error %q, got %q", msgTitleLength, got)
			}
		})
	}
}

func TestValidateCreateTaskRequest_Description(t *testing.T) {
	fields, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:       ptr("t"),
		Description: ptr("  " + strings.Repeat("d", 500) + "  "),
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fields.Description) != 500 {
		t.Errorf("expected trimmed description of 500 chars, got %d", len(fields.Description))
	}

	_, err = ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:       ptr("t"),
		Description: ptr(strings.Repeat("d", 501)),
	}, time.Now())
	if got := fieldsOf(t, err)["description"]; got != msgDescriptionLength {
		t.Errorf("expected description error, got %q", got)
	}
}

func TestValidateCreateTaskRequest_Enums(t *testing.T) {
	_, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:    ptr("t"),
		Category: ptr("hobby"),
		Priority: ptr("urgent"),
		Status:   ptr("done"),
	}, time.Now())

	fields := fieldsOf(t, err)
	want := map[string]string{
		"category": "Invalid category: must be one of work, personal, shopping, health, education, other",
		"priority": "Invalid priority: must be one of low, medium, high",
		"status":   "Invalid status: must be one of pending, in-progress, completed",
	}
	for field, msg := range want {
		if fields[field] != msg {
			t.Errorf("field %s: expected %q, got %q", field, msg, fields[field])
		}
	}
}

func TestValidateCreateTaskRequest_ReportsAllFields(t *testing.T) {
	_, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:    ptr(""),
		Priority: ptr("urgent"),
		Deadline: ptr("tomorrow"),
	}, time.Now())

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	got := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		got[i] = f.Field
	}
	if strings.Join(got, ",") != "title,priority,deadline" {
		t.Errorf("unexpected failing fields: %v", got)
	}
}

func TestValidateDeadline_Boundary(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     string
		wantMsg string
	}{
		{name: "exactly now", raw: now.Format(time.RFC3339Nano), wantMsg: msgDeadlinePast},
		{name: "one nanosecond before", raw: now.Add(-time.Nanosecond).Format(time.RFC3339Nano), wantMsg: msgDeadlinePast},
		{name: "one nanosecond after", raw: now.Add(time.Nanosecond).Format(time.RFC3339Nano), wantMsg: ""},
		{name: "date only in future", raw: "2030-06-02", wantMsg: ""},
		{name: "date only today", raw: "2030-06-01", wantMsg: msgDeadlinePast},
		{name: "offset timezone", raw: "2030-06-01T14:00:01+02:00", wantMsg: ""},
		{name: "no zone with seconds", raw: "2030-06-01T12:00:01", wantMsg: ""},
		{name: "no zone without seconds", raw: "2030-06-01T12:01", wantMsg: ""},
		{name: "no zone read as UTC", raw: "2030-06-01T12:00", wantMsg: msgDeadlinePast},
		{name: "basic offset", raw: "2030-06-01T12:00:00.500+0000", wantMsg: ""},
		{name: "basic offset in past", raw: "2030-06-01T13:00:00+0200", wantMsg: msgDeadlinePast},
		{name: "garbage", raw: "next week", wantMsg: msgDeadlineFormat},
		{name: "time without date", raw: "12:00", wantMsg: msgDeadlineFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deadline, msg := validateDeadline(&tt.raw, now)
			if msg != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, msg)
			}
			if msg == "" && (deadline == nil || !deadline.After(now)) {
				t.Errorf("accepted deadline %v is not after now", deadline)
			}
		})
	}
}

func TestValidateCreateTaskRequest_LocalDateTimeDeadline(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	fields, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:    ptr("Dentist"),
		Deadline: ptr("2027-06-01T10:00"),
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2027, 6, 1, 10, 0, 0, 0, time.UTC)
	if fields.Deadline == nil || !fields.Deadline.Equal(want) || fields.Deadline.Location() != time.UTC {
		t.Errorf("expected deadline %v, got %v", want, fields.Deadline)
	}
}

func TestValidateUpdateTaskRequest_OnlySuppliedFields(t *testing.T) {
	patch, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Status: ptr("completed")}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.Title != nil || patch.Category != nil || patch.Deadline != nil {
		t.Errorf("expected untouched fields to stay nil: %+v", patch)
	}
	if patch.Status == nil || *patch.Status != constants.StatusCompleted {
		t.Errorf("expected status completed, got %v", patch.Status)
	}
}

func TestValidateUpdateTaskRequest_SuppliedTitleStillValidated(t *testing.T) {
	_, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Title: ptr("  ")}, time.Now())
	if got := fieldsOf(t, err)["title"]; got != msgTitleLength {
		t.Errorf("expected title error, got %q", got)
	}
}

func TestValidateUpdateTaskRequest_Empty(t *testing.T) {
	patch, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !patch.Empty() {
		t.Errorf("expected empty patch, got %+v", patch)
	}
}

func TestValidateTaskListFilter(t *testing.T) {
	filter, err := ValidateTaskListFilter(&dto.TaskListFilter{Status: "pending"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.Status == nil || *filter.Status != constants.StatusPending {
		t.Errorf("expected pending filter, got %v", filter.Status)
	}
	if filter.Category != nil || filter.Priority != nil {
		t.Errorf("expected unset filters to be nil")
	}

	_, err = ValidateTaskListFilter(&dto.TaskListFilter{Category: "hobby"})
	if _, ok := fieldsOf(t, err)["category"]; !ok {
		t.Errorf("expected category filter error")
	}
}
