package config

// PaymentNumber is the wallet number customers transfer to when paying
// electronically. A human admin matches the reference code against it.
const PaymentNumber = "774757968"

// DeliveryArea is a fixed named zone with a flat delivery fee in YER.
type DeliveryArea struct {
	ID     string `json:"id"`
	NameAR string `json:"name_ar"`
	NameEN string `json:"name_en"`
	Fee    int    `json:"price"`
}

// DeliveryAreas lists the zones of Sana'a the shop delivers to.
var DeliveryAreas = []DeliveryArea{
	{ID: "madhbah", NameAR: "مذبح و شملان", NameEN: "Madhbah & Shamlan", Fee: 500},
	{ID: "sabeen", NameAR: "السبعين", NameEN: "Al Sab’een", Fee: 700},
	{ID: "hadda", NameAR: "حدة", NameEN: "Hadda", Fee: 700},
	{ID: "tahrir", NameAR: "التحرير", NameEN: "Al Tahrir", Fee: 500},
	{ID: "sawan", NameAR: "سعوان", NameEN: "Sa’wan", Fee: 1000},
	{ID: "hasbah", NameAR: "الحصبة", NameEN: "Al Hasbah", Fee: 800},
	{ID: "hael", NameAR: "هايل", NameEN: "Hael", Fee: 500},
	{ID: "airport", NameAR: "المطار", NameEN: "Airport", Fee: 1200},
	{ID: "beitbous", NameAR: "بيت بوس", NameEN: "Beit Bous", Fee: 1000},
	{ID: "asbahi", NameAR: "الأصبحي", NameEN: "Al Asbahi", Fee: 1000},
	{ID: "hazeez", NameAR: "حزيز", NameEN: "Hazeez", Fee: 1500},
}

// Wallets are the electronic payment channels the shop accepts.
var Wallets = []string{
	"Jeeb Wallet", "Jawwy Wallet", "Cash Wallet", "Al-Kuraimi Bank", "Mobile Money Wallet",
}

// AreaByID looks up a delivery area by its id.
func AreaByID(id string) (DeliveryArea, bool) {
	for _, a := range DeliveryAreas {
		if a.ID == id {
			return a, true
		}
	}
	return DeliveryArea{}, false
}

// DeliveryFee returns the flat fee for an area, or 0 for an unknown id.
func DeliveryFee(id string) int {
	if a, ok := AreaByID(id); ok {
		return a.Fee
	}
	return 0
}

// AreaDisplayName resolves an area id to its English name, falling back to
// the raw id when the area is not in the table.
func AreaDisplayName(id string) string {
	if a, ok := AreaByID(id); ok {
		return a.NameEN
	}
	return id
}
