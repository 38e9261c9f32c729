package ledger

import (
	"time"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// DateLayout formato de fecha aceptado en consultas de extracto (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// FilterByDay devuelve, en orden, las operaciones cuyo CreatedAt cae en el
// mismo día calendario que day. La comparación se hace por año/mes/día en la
// zona horaria de day, no por instante.
func FilterByDay(ops []entity.Operation, day time.Time) []entity.Operation {
	loc := day.Location()
	y, m, d := day.Date()
	out := make([]entity.Operation, 0)
	for _, op := range ops {
		oy, om, od := op.CreatedAt.In(loc).Date()
		if oy == y && om == m && od == d {
			out = append(out, op)
		}
	}
	return out
}

// ParseDay interpreta s (YYYY-MM-DD) como inicio de día en loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, s, loc)
}
