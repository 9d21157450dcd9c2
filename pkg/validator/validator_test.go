package validator

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+79161234567", true},
		{"89161234567", true},
		{"8 (916) 123-45-67", true},
		{"12345", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidatePhone(tt.phone); got != tt.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"89161234567", "+79161234567"},
		{"79161234567", "+79161234567"},
		{"+79161234567", "+79161234567"},
		{"8 (916) 123-45-67", "+79161234567"},
	}

	for _, tt := range tests {
		if got := FormatPhone(tt.phone); got != tt.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.phone, got, tt.want)
		}
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"анна", "Анна"},
		{"ИВАНОВА-ПЕТРОВА", "Иванова-Петрова"},
		{"мария  сидорова", "Мария Сидорова"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatName(tt.name); got != tt.want {
			t.Errorf("FormatName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("admin@salon.ru") {
		t.Error("expected valid email")
	}
	if ValidateEmail("not-an-email") {
		t.Error("expected invalid email")
	}
}
