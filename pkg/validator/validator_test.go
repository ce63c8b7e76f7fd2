package validator

import "testing"

type sampleRequest struct {
	Email string `validate:"required,email"`
	Date  string `validate:"required,datetime=2006-01-02"`
	Day   int    `validate:"gte=0,lte=6"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "user@example.com", Date: "2026-04-20", Day: 3})
	if err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "not-an-email", Date: "20-04-2026", Day: 9})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	formatted := cv.FormatValidationErrors(err)

	if formatted["Email"] != "Email must be a valid email address" {
		t.Errorf("email message = %q", formatted["Email"])
	}
	if formatted["Date"] != "Date must match the format 2006-01-02" {
		t.Errorf("date message = %q", formatted["Date"])
	}
	if formatted["Day"] != "Day must be less than or equal to 6" {
		t.Errorf("day message = %q", formatted["Day"])
	}
}
