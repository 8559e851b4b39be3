package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"portal-api/internal/domain/lca"
)

const (
	lcaListKeyPrefix = "lca:list:"

	// LCAListCachePattern matches every cached listing page.
	LCAListCachePattern = lcaListKeyPrefix + "*"
)

type lcaListCacheKeyInput struct {
	Status        string `json:"status"`
	VisaType      string `json:"visa_type"`
	Search        string `json:"search"`
	CertifiedOnly bool   `json:"certified_only"`
	Page          int    `json:"page"`
	Limit         int    `json:"limit"`
}

// Search matching is case-insensitive, so case is folded. Inner whitespace is
// significant to the match and is kept.
func normalizeSearchValue(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func LCAListCacheKey(f lca.Filter, page, limit int) string {
	f = f.Normalized()
	page, limit = lca.NormalizePage(page, limit)

	in := lcaListCacheKeyInput{
		Status:        string(f.Status),
		VisaType:      string(f.VisaType),
		Search:        normalizeSearchValue(f.Search),
		CertifiedOnly: f.CertifiedOnly,
		Page:          page,
		Limit:         limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return lcaListKeyPrefix + hex.EncodeToString(sum[:])
}
