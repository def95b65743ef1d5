package domain

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// TrackingKeyPrefix is the fixed literal prefixed to every tracking key.
const TrackingKeyPrefix = "MBANO"

// spanishMonths is the fixed month-name table used for the receipt date.
var spanishMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Generator produces randomized default values for a receipt session.
// Randomness is an explicit field so a session owns its own source and
// tests can seed it deterministically.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded from the wall clock.
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator creates a Generator with a fixed seed.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewRecord builds the initial record for a session: randomized numerics
// plus the fixed display defaults, dated at now.
func (g *Generator) NewRecord(now time.Time) ReceiptRecord {
	return ReceiptRecord{
		Date:            SpanishDate(now),
		Time:            Clock24(now),
		Amount:          g.Amount(),
		SenderAccount:   g.Account(),
		ReceiverAccount: g.Account(),
		ReceiverName:    "EL SAT",
		ReceiverBank:    "Cuenta BANCOMEME",
		Concept:         "rancheritos y coca de 600",
		Reference:       g.Reference(),
		Folio:           g.Folio(),
		TrackingKey:     g.TrackingKey(),
		Email:           "ay@gmail.com",
		CircleColor:     DefaultCircleColor,
	}
}

// Amount returns a uniform random amount in [1, 1000000) with two decimals.
func (g *Generator) Amount() string {
	return fmt.Sprintf("%.2f", g.rng.Float64()*999999+1)
}

// Account returns a random 5-digit account number.
func (g *Generator) Account() string {
	return fmt.Sprintf("%d", g.rng.Intn(90000)+10000)
}

// Reference returns a random 7-digit reference number.
func (g *Generator) Reference() string {
	return fmt.Sprintf("%d", g.rng.Intn(9000000)+1000000)
}

// Folio returns a random 9-digit folio number.
func (g *Generator) Folio() string {
	return fmt.Sprintf("%d", g.rng.Intn(900000000)+100000000)
}

// TrackingKey returns the fixed prefix followed by 20 random decimal digits.
func (g *Generator) TrackingKey() string {
	var b strings.Builder
	b.WriteString(TrackingKeyPrefix)
	for i := 0; i < 20; i++ {
		b.WriteByte(byte('0' + g.rng.Intn(10)))
	}
	return b.String()
}

// SpanishDate formats t as "2 septiembre 2026".
func SpanishDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// Clock24 formats t as zero-padded 24-hour "HH:MM:SS".
func Clock24(t time.Time) string {
	return t.Format("15:04:05")
}
