package store

// Transaction is one entry of a batch file, in the shape the transaction
// batch tool expects.
type Transaction struct {
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

// Batch is the envelope written to a single output file. TokenIDs backs the
// transactions in order and is only used to name the file.
type Batch struct {
	ChainID      string         `json:"chainId"`
	Transactions []*Transaction `json:"transactions"`
	TokenIDs     []uint64       `json:"-"`
}
