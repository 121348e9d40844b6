package schedule

import "testing"

func TestCheckDailyLimit(t *testing.T) {
	tests := []struct {
		existing float64
		add      float64
		limit    float64
		wantErr  bool
	}{
		{6, 5, 10, true},
		{6, 4, 10, false},
		{0, 12, 12, false},
		{0, 12.5, 12, true},
		{11.5, 0.5, 12, false},
	}

	for _, tt := range tests {
		err := CheckDailyLimit(tt.existing, tt.add, tt.limit)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckDailyLimit(%v, %v, %v) error = %v, wantErr %v",
				tt.existing, tt.add, tt.limit, err, tt.wantErr)
		}
	}
}
