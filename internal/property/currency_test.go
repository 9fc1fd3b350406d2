package property

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		city   string
		want   string
	}{
		{"addis ababa", "20000", "Addis Ababa", "ETB 20,000"},
		{"nairobi", "45000", "Nairobi", "KES 45,000"},
		{"lagos", "150000", "Lagos", "₦ 150,000"},
		{"unknown city", "95000", "Unknown City", "95,000"},
		{"small amount", "999", "Nairobi", "KES 999"},
		{"millions", "1250000", "Lagos", "₦ 1,250,000"},
		{"fraction", "1234.5", "Nairobi", "KES 1,234.5"},
		{"empty is zero", "", "Addis Ababa", "ETB 0"},
		{"not a number", "abc", "Lagos", "abc"},
		{"already formatted", "20,000", "Addis Ababa", "20,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCurrency(tt.amount, tt.city)
			if got != tt.want {
				t.Errorf("FormatCurrency(%q, %q) = %q, want %q", tt.amount, tt.city, got, tt.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int64
		city   City
		want   string
	}{
		{0, AddisAbaba, "ETB 0"},
		{20000, AddisAbaba, "ETB 20,000"},
		{45000, Nairobi, "KES 45,000"},
		{95000, Lagos, "₦ 95,000"},
		{95000, City("Accra"), "95,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatPrice(tt.amount, tt.city)
			if got != tt.want {
				t.Errorf("FormatPrice(%d, %q) = %q, want %q", tt.amount, tt.city, got, tt.want)
			}
		})
	}
}

func TestPriceLabel(t *testing.T) {
	p := Property{Price: 35000, City: Nairobi}
	if got := p.PriceLabel(); got != "KES 35,000" {
		t.Errorf("PriceLabel = %q, want %q", got, "KES 35,000")
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"20000", 20000, false},
		{"20,000", 20000, false},
		{"ETB 20,000", 20000, false},
		{"₦ 150,000 /month", 150000, false},
		{"free", 0, true},
		{"", 0, true},
		{",,,", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePrice(%q): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePrice(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePrice(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCurrencyCode(t *testing.T) {
	tests := map[City]string{
		AddisAbaba:   "ETB",
		Nairobi:      "KES",
		Lagos:        "NGN",
		City("Rome"): "",
	}
	for city, want := range tests {
		if got := CurrencyCode(city); got != want {
			t.Errorf("CurrencyCode(%q) = %q, want %q", city, got, want)
		}
	}
}
