package usecase

import (
	"testing"

	"dental-office-backend/internal/delivery/dto"
)

func TestValidRuleWindow(t *testing.T) {
	day := 1

	tests := []struct {
		name string
		req  dto.UpsertAvailabilityRuleRequest
		want bool
	}{
		{
			name: "plain working day",
			req:  dto.UpsertAvailabilityRuleRequest{DayOfWeek: &day, StartTime: "09:00", EndTime: "17:00"},
			want: true,
		},
		{
			name: "break inside the window",
			req: dto.UpsertAvailabilityRuleRequest{
				DayOfWeek: &day, StartTime: "09:00", EndTime: "17:00",
				BreakStart: strPtr("12:00"), BreakEnd: strPtr("13:00"),
			},
			want: true,
		},
		{
			name: "start after end",
			req:  dto.UpsertAvailabilityRuleRequest{DayOfWeek: &day, StartTime: "17:00", EndTime: "09:00"},
			want: false,
		},
		{
			name: "start equals end",
			req:  dto.UpsertAvailabilityRuleRequest{DayOfWeek: &day, StartTime: "09:00", EndTime: "09:00"},
			want: false,
		},
		{
			name: "break start without end",
			req: dto.UpsertAvailabilityRuleRequest{
				DayOfWeek: &day, StartTime: "09:00", EndTime: "17:00",
				BreakStart: strPtr("12:00"),
			},
			want: false,
		},
		{
			name: "inverted break",
			req: dto.UpsertAvailabilityRuleRequest{
				DayOfWeek: &day, StartTime: "09:00", EndTime: "17:00",
				BreakStart: strPtr("13:00"), BreakEnd: strPtr("12:00"),
			},
			want: false,
		},
		{
			name: "break outside working hours",
			req: dto.UpsertAvailabilityRuleRequest{
				DayOfWeek: &day, StartTime: "09:00", EndTime: "17:00",
				BreakStart: strPtr("17:30"), BreakEnd: strPtr("18:00"),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validRuleWindow(&tt.req); got != tt.want {
				t.Errorf("validRuleWindow() = %v, want %v", got, tt.want)
			}
		})
	}
}
