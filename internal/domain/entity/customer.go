package entity

import (
	"slices"
	"time"
)

// Customer representa un cliente titular de una cuenta del libro mayor.
// TaxID (CPF) es único e inmutable; Statement solo crece por Append.
type Customer struct {
	ID        string
	TaxID     string // CPF
	Name      string
	Statement []Operation
	CreatedAt time.Time
}

// Append agrega una operación al final del extracto.
func (c *Customer) Append(op Operation) {
	c.Statement = append(c.Statement, op)
}

// Clone devuelve una copia independiente (el extracto no comparte backing array).
func (c *Customer) Clone() *Customer {
	cp := *c
	cp.Statement = slices.Clone(c.Statement)
	return &cp
}
