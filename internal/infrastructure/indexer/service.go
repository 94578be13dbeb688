package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sony/gobreaker"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/circuitbreaker"
)

const (
	searchPath    = "/api/v2/scan/search"
	referendaPath = "/api/scan/referenda/votes"

	multisigCacheSize = 512
)

type cachedSearch struct {
	info  ports.MultisigInfo
	found bool
}

type service struct {
	apiURL  string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	// searches holds resolved multisig lookups keyed by address, so a
	// resynchronization does not replay identical queries against the
	// upstream indexer.
	searches *lru.Cache[string, cachedSearch]
}

// NewService returns an indexer backed by a subscan-compatible HTTP API.
// All calls go through a circuit breaker and multisig lookups are cached.
func NewService(apiURL string, requestTimeout time.Duration) (ports.IndexerService, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("missing indexer endpoint")
	}
	searches, err := lru.New[string, cachedSearch](multisigCacheSize)
	if err != nil {
		return nil, err
	}
	return &service{
		apiURL:   apiURL,
		client:   &http.Client{Timeout: requestTimeout},
		breaker:  circuitbreaker.NewCircuitBreaker("indexer"),
		searches: searches,
	}, nil
}

func (s *service) Search(
	ctx context.Context, address string,
) (ports.MultisigInfo, bool, error) {
	if hit, ok := s.searches.Get(address); ok {
		return hit.info, hit.found, nil
	}

	body, err := s.post(ctx, searchPath, searchRequest{Key: address})
	if err != nil {
		return ports.MultisigInfo{}, false, err
	}

	resp := searchResponse{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return ports.MultisigInfo{}, false, fmt.Errorf("invalid search response: %w", err)
	}
	if resp.Code != 0 {
		return ports.MultisigInfo{}, false, fmt.Errorf(
			"indexer rejected search: %s (%d)", resp.Message, resp.Code,
		)
	}

	info, found := parseSearch(resp.Data)
	s.searches.Add(address, cachedSearch{info: info, found: found})
	return info, found, nil
}

func (s *service) Referenda(
	ctx context.Context, address string, page, rows int,
) ([]ports.ReferendumVote, int, error) {
	body, err := s.post(ctx, referendaPath, referendaRequest{
		Address: address,
		Page:    page,
		Row:     rows,
	})
	if err != nil {
		return nil, 0, err
	}

	resp := referendaResponse{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, 0, fmt.Errorf("invalid referenda response: %w", err)
	}
	if resp.Code != 0 {
		return nil, 0, fmt.Errorf(
			"indexer rejected referenda listing: %s (%d)", resp.Message, resp.Code,
		)
	}
	if resp.Data == nil {
		return nil, 0, nil
	}

	votes := make([]ports.ReferendumVote, 0, len(resp.Data.List))
	for _, v := range resp.Data.List {
		votes = append(votes, ports.ReferendumVote{
			ReferendumIndex: v.ReferendumIndex,
			Amount:          v.Amount,
			Conviction:      v.Conviction,
			Ongoing:         v.Status == "ongoing",
		})
	}
	return votes, resp.Data.Count, nil
}

func (s *service) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	body, err := s.breaker.Execute(func() (interface{}, error) {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(
			ctx, http.MethodPost, s.apiURL+path, bytes.NewReader(buf),
		)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		rs, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer rs.Body.Close()

		respBody, err := io.ReadAll(rs.Body)
		if err != nil {
			return nil, err
		}
		if rs.StatusCode != http.StatusOK {
			return nil, fmt.Errorf(
				"indexer returned status %d: %s", rs.StatusCode, string(respBody),
			)
		}
		return respBody, nil
	})
	if err != nil {
		return nil, err
	}
	return body.([]byte), nil
}

func parseSearch(data *searchData) (ports.MultisigInfo, bool) {
	if data == nil || data.Account == nil || data.Account.Multisig == nil {
		return ports.MultisigInfo{}, false
	}

	listed := data.Account.Multisig.MultiAccount
	if len(listed) == 0 {
		return ports.MultisigInfo{}, false
	}

	multisigs := make([]ports.IndexedMultisig, 0, len(listed))
	for _, m := range listed {
		members := make([]string, 0, len(m.MultiAccountMember))
		for _, member := range m.MultiAccountMember {
			members = append(members, member.Address)
		}
		multisigs = append(multisigs, ports.IndexedMultisig{
			Address:           m.Address,
			Threshold:         m.Threshold,
			Members:           members,
			PendingCallHashes: m.PendingCallHashes,
		})
	}
	return ports.MultisigInfo{Multisigs: multisigs}, true
}
