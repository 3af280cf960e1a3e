package repository

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"krishiapi/internal/model"

	"github.com/lib/pq"
)

const dateLayout = "2006-01-02"

const priceColumns = `id, commodity, market, district, state, min_price, max_price, modal_price, arrival_date`

var searchColumns = []string{"commodity", "market", "district"}

// orderingColumns is the set of fields the listing can be sorted by.
var orderingColumns = map[string]bool{
	"arrival_date": true,
	"modal_price":  true,
	"min_price":    true,
	"max_price":    true,
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func splitSearchTerms(search string) []string {
	search = strings.ReplaceAll(search, "\x00", "")
	return strings.FieldsFunc(search, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseOrdering turns "-modal_price,arrival_date" into an ORDER BY list.
// Unknown fields are dropped; with nothing left it falls back to id.
func parseOrdering(ordering string) string {
	var parts []string
	for _, field := range strings.Split(ordering, ",") {
		field = strings.TrimSpace(field)
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			dir = "DESC"
			field = field[1:]
		}
		if !orderingColumns[field] {
			continue
		}
		parts = append(parts, field+" "+dir)
	}

	if len(parts) == 0 {
		return "id ASC"
	}
	return strings.Join(parts, ", ")
}

func buildListQuery(q model.PriceQuery) (string, []any) {
	var (
		sb      strings.Builder
		args    []any
		clauses []string
	)

	sb.WriteString("SELECT " + priceColumns + " FROM " + model.PriceTable)

	for _, term := range splitSearchTerms(q.Search) {
		args = append(args, "%"+likeEscaper.Replace(term)+"%")
		n := len(args)

		ors := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			ors[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
		}
		clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")
	}

	if len(clauses) > 0 {
		sb.WriteString(" WHERE " + strings.Join(clauses, " AND "))
	}

	sb.WriteString(" ORDER BY " + parseOrdering(q.Ordering))

	if q.Limit > 0 {
		args = append(args, q.Limit, q.Offset)
		fmt.Fprintf(&sb, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	return sb.String(), args
}

const marketPricesQuery = "SELECT " + priceColumns + " FROM " + model.PriceTable +
	" WHERE market = $1 AND arrival_date = ANY($2::date[])" +
	" ORDER BY commodity ASC, arrival_date DESC"

const latestPricesQuery = "SELECT " + priceColumns + " FROM " + model.PriceTable +
	" ORDER BY arrival_date DESC LIMIT $1"

// buildMarketPricesQuery binds dates as calendar days; the time of day
// and zone of each value are ignored.
func buildMarketPricesQuery(market string, dates []time.Time) (string, []any) {
	days := make([]string, len(dates))
	for i, d := range dates {
		days[i] = d.Format(dateLayout)
	}
	return marketPricesQuery, []any{market, pq.Array(days)}
}

func buildLatestQuery(limit int) (string, []any) {
	return latestPricesQuery, []any{limit}
}
