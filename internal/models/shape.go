package models

import "strconv"

// Record shapes a stored row into its API form.
func (t Transaction) Record() TransactionRecord {
	r := TransactionRecord{
		ID:          strconv.FormatInt(t.ID, 10),
		UserID:      t.UserID,
		StockSymbol: t.StockSymbol,
		Shares:      t.Shares,
		Price:       t.Price.InexactFloat64(),
	}
	if t.Timestamp.Valid {
		r.Timestamp = FormatTimestamp(t.Timestamp.Time)
	}
	return r
}

// Records shapes rows in order. The result is never nil.
func Records(rows []Transaction) []TransactionRecord {
	out := make([]TransactionRecord, 0, len(rows))
	for _, t := range rows {
		out = append(out, t.Record())
	}
	return out
}

// TopStocks normalizes a nil slice to an empty one.
func TopStocks(rows []TopStock) []TopStock {
	if rows == nil {
		return []TopStock{}
	}
	return rows
}

// Created builds the create-operation response for the inserted row.
func Created(t *Transaction) TransactionResponse {
	resp := TransactionResponse{Message: CreatedMessage}
	if t == nil {
		return resp
	}
	id := strconv.FormatInt(t.ID, 10)
	rec := t.Record()
	resp.TransactionID = &id
	resp.Transaction = &rec
	return resp
}
