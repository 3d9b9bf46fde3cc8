package build

import (
	"github.com/kotaroooo0/kanakanji/dict"
	"github.com/kotaroooo0/kanakanji/diag"
	"github.com/kotaroooo0/kanakanji/kana"
	"github.com/kotaroooo0/kanakanji/louds"
	"github.com/kotaroooo0/kanakanji/prefixtree"
)

// Dictionaries bundles the four immutable stores a built engine reads
// from (spec §2 step 3-6): the reading trie with termIds, the surface
// trie, the token array, and the POS table plus connection matrix.
type Dictionaries struct {
	ReadingTrie *louds.TermIDLouds
	SurfaceTrie *louds.Louds
	Tokens      *dict.TokenArray
	PosTable    *dict.PosTable
	Connection  *dict.ConnectionMatrix
}

// DictionaryBuilder accumulates source rows and, on Build, produces an
// immutable Dictionaries bundle. Mirrors the accumulate-then-flush shape
// of a document indexer: rows stream in via AddRows, then one Build call
// performs the whole offline pipeline.
type DictionaryBuilder struct {
	rows       []SourceRow
	connection *dict.ConnectionMatrix
	logger     *diag.Logger
}

// Option configures a DictionaryBuilder.
type Option func(*DictionaryBuilder)

// WithLogger attaches a diagnostics logger used to report build-time
// fatal errors (spec §7: build-time failures are fail-fast and surfaced).
func WithLogger(l *diag.Logger) Option {
	return func(b *DictionaryBuilder) { b.logger = l }
}

// NewDictionaryBuilder returns an empty builder. conn is the connection
// matrix, loaded verbatim per spec §3/§4.6; it is independent of the
// rows accumulated below.
func NewDictionaryBuilder(conn *dict.ConnectionMatrix, opts ...Option) *DictionaryBuilder {
	b := &DictionaryBuilder{connection: conn, logger: diag.NewLogger()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRows appends source dictionary rows to the pending build batch.
func (b *DictionaryBuilder) AddRows(rows ...SourceRow) {
	b.rows = append(b.rows, rows...)
}

// pendingToken is a token payload recorded before the POS table's
// descending re-label pass, keyed by the posIndex it was first assigned.
type pendingToken struct {
	oldPosIndex uint16
	wordCost    int16
	nodeIndex   int32
}

// Build runs the full offline pipeline described in spec §2: group rows
// by reading and assign termIds, build the surface trie first (since
// token resolution needs surface node indices), build the reading trie
// with termIds, assign posIndexes in canonical row order, re-label them
// per the POS table's descending rule, and only then assemble the token
// array with final posIndexes.
//
// Build-time failures are fatal (spec §7); a row whose surface cannot be
// resolved in the surface trie after insertion is a logic error and this
// method logs and panics rather than returning a corrupt dictionary.
func (b *DictionaryBuilder) Build() *Dictionaries {
	groups := GroupAndAssignTermIDs(b.rows)

	surfaceTreeRoot := prefixtree.New()
	for _, g := range groups {
		for _, row := range g.Rows {
			if !isSentinelSurface(row.Reading, row.Surface) {
				surfaceTreeRoot.Insert(row.Surface)
			}
		}
	}
	surfaceTrie := louds.Build(surfaceTreeRoot.Root())

	readingTreeRoot := prefixtree.NewWithTermID()
	for _, g := range groups {
		readingTreeRoot.Insert(g.Reading, int32(g.TermID))
	}
	readingTrie := louds.BuildWithTermID(readingTreeRoot.Root())

	posBuilder := dict.NewPosTableBuilder()
	pending := make([][]pendingToken, len(groups))
	for i, g := range groups {
		toks := make([]pendingToken, 0, len(g.Rows))
		for _, row := range g.Rows {
			oldPosIdx := posBuilder.Assign(dict.PosPair{LeftID: row.LeftID, RightID: row.RightID})
			nodeIdx := ResolveNodeIndex(row.Reading, row.Surface, func(surface []uint16) int32 {
				pos := surfaceTrie.NodeIndex(surface)
				if pos < 0 {
					b.logger.Fatalf("build: surface %q failed to resolve in surface trie", string(runesOf(surface)))
				}
				return int32(pos)
			})
			toks = append(toks, pendingToken{oldPosIndex: oldPosIdx, wordCost: row.Cost, nodeIndex: nodeIdx})
		}
		pending[i] = toks
	}
	posTable, remap := posBuilder.Build()

	tokenBuilder := dict.NewTokenArrayBuilder()
	for _, toks := range pending {
		entries := make([]dict.SourceToken, 0, len(toks))
		for _, t := range toks {
			entries = append(entries, dict.SourceToken{
				PosIndex:  remap[t.oldPosIndex],
				WordCost:  t.wordCost,
				NodeIndex: t.nodeIndex,
			})
		}
		tokenBuilder.AddTermTokens(entries)
	}
	tokenArray := tokenBuilder.Build()

	return &Dictionaries{
		ReadingTrie: readingTrie,
		SurfaceTrie: surfaceTrie,
		Tokens:      tokenArray,
		PosTable:    posTable,
		Connection:  b.connection,
	}
}

func isSentinelSurface(reading, surface []uint16) bool {
	surfaceStr := string(runesOf(surface))
	if surfaceStr == string(runesOf(reading)) {
		return true
	}
	return kana.IsAllHiragana(surfaceStr) || kana.IsAllKatakana(surfaceStr)
}
