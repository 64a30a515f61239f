package validation

import "github.com/spec-kit/ticketapp/internal/domain"

// ValidateCreateTicket checks the create-shaped payload. Id and timestamps
// are generated by the store, never supplied here.
func ValidateCreateTicket(in domain.CreateTicket) error {
	var errs FieldErrors
	checkTitle(&errs, in.Title)
	checkDescription(&errs, in.Description)
	checkStatus(&errs, in.Status)
	if in.Priority != "" {
		checkPriority(&errs, in.Priority)
	}
	checkAssignee(&errs, in.Assignee)
	return errs.asError()
}

// ValidateUpdateTicket checks a partial update. The id is mandatory; every
// other field is validated only when present.
func ValidateUpdateTicket(id string, in domain.UpdateTicket) error {
	var errs FieldErrors
	if id == "" {
		errs.add("id", "ID is required")
	}
	if in.Title != nil {
		checkTitle(&errs, *in.Title)
	}
	if in.Description != nil {
		checkDescription(&errs, *in.Description)
	}
	if in.Status != nil {
		checkStatus(&errs, *in.Status)
	}
	if in.Priority != nil && *in.Priority != "" {
		checkPriority(&errs, *in.Priority)
	}
	if in.Assignee != nil {
		checkAssignee(&errs, *in.Assignee)
	}
	return errs.asError()
}

func checkTitle(errs *FieldErrors, title string) {
	switch {
	case title == "":
		errs.add("title", "Title is required")
	case len(title) < 3:
		errs.add("title", "Title must be at least 3 characters")
	case len(title) > 100:
		errs.add("title", "Title must be less than 100 characters")
	}
}

func checkDescription(errs *FieldErrors, description string) {
	if len(description) > 500 {
		errs.add("description", "Description must be less than 500 characters")
	}
}

func checkStatus(errs *FieldErrors, status domain.TicketStatus) {
	if !status.Valid() {
		errs.add("status", "Status must be open, in_progress, or closed")
	}
}

func checkPriority(errs *FieldErrors, priority domain.TicketPriority) {
	if !priority.Valid() {
		errs.add("priority", "Priority must be low, medium, high, or urgent")
	}
}

func checkAssignee(errs *FieldErrors, assignee string) {
	if len(assignee) > 50 {
		errs.add("assignee", "Assignee name must be less than 50 characters")
	}
}
