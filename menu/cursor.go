package menu

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// FirstPage is the lowest valid page number.
const FirstPage = 1

var (
	nextTokens = map[string]bool{"next": true, "n": true, ">": true, "+": true, "下一页": true}
	prevTokens = map[string]bool{"prev": true, "p": true, "previous": true, "<": true, "-": true, "上一页": true}
)

// CursorStore remembers the current page of each session.
type CursorStore struct {
	pages map[string]int // sessionID -> page
	mu    sync.RWMutex
}

// NewCursorStore creates an empty cursor store.
func NewCursorStore() *CursorStore {
	return &CursorStore{
		pages: make(map[string]int),
	}
}

// Get returns the stored page for a session, or FirstPage when none is stored.
func (cs *CursorStore) Get(sessionID string) int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if page, ok := cs.pages[sessionID]; ok {
		return page
	}
	return FirstPage
}

// Set stores the page for a session.
func (cs *CursorStore) Set(sessionID string, page int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.pages[sessionID] = page
}

// Clear forgets every session's page.
func (cs *CursorStore) Clear() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.pages = make(map[string]int)
}

// Len returns the number of sessions with a stored page.
func (cs *CursorStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.pages)
}

// Resolve works out which page a session should see for arg, stores it and
// returns it. A non-empty warning is returned when arg was not understood.
func (cs *CursorStore) Resolve(sessionID, arg string, totalPages int) (page int, warning string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	current, ok := cs.pages[sessionID]
	if !ok {
		current = FirstPage
	}

	token := strings.ToLower(strings.TrimSpace(arg))
	switch {
	case token == "":
		page = current
	case nextTokens[token]:
		page = current + 1
	case prevTokens[token]:
		page = current - 1
	case isDigits(token):
		n, err := strconv.Atoi(token)
		if err != nil {
			// only overflow gets here
			n = totalPages
		}
		page = n
	default:
		page = FirstPage
		warning = fmt.Sprintf("Unknown page argument %q, showing page %d.", strings.TrimSpace(arg), FirstPage)
	}

	page = ClampPage(page, totalPages)
	cs.pages[sessionID] = page
	return page, warning
}

// ClampPage saturates page into [FirstPage, totalPages]. totalPages below one
// is treated as one.
func ClampPage(page, totalPages int) int {
	totalPages = max(totalPages, FirstPage)
	return min(max(page, FirstPage), totalPages)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
