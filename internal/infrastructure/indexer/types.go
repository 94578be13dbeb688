package indexer

// Wire types of the subscan-compatible indexer API. The envelope carries a
// numeric code where 0 means success; any other code is an upstream
// rejection and is surfaced as an error, not as absence.

type responseEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type searchResponse struct {
	responseEnvelope
	Data *searchData `json:"data"`
}

type searchData struct {
	Account *accountData `json:"account"`
}

type accountData struct {
	Address  string        `json:"address"`
	Multisig *multisigData `json:"multisig"`
}

type multisigData struct {
	MultiAccount []multiAccount `json:"multi_account"`
}

type multiAccount struct {
	Address            string       `json:"address"`
	Threshold          uint32       `json:"threshold"`
	MultiAccountMember []accountRef `json:"multi_account_member"`
	PendingCallHashes  []string     `json:"pending_call_hashes"`
}

type accountRef struct {
	Address string `json:"address"`
}

type referendaResponse struct {
	responseEnvelope
	Data *referendaData `json:"data"`
}

type referendaData struct {
	Count int              `json:"count"`
	List  []referendumVote `json:"list"`
}

type referendumVote struct {
	ReferendumIndex uint32 `json:"referendum_index"`
	Amount          string `json:"amount"`
	Conviction      string `json:"conviction"`
	Status          string `json:"status"`
}

type searchRequest struct {
	Key string `json:"key"`
}

type referendaRequest struct {
	Address string `json:"address"`
	Page    int    `json:"page"`
	Row     int    `json:"row"`
}
