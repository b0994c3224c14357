// Package tenants holds the tenant directory: which organisations exist,
// how their dashboards are themed and which accounts belong to each. The
// directory is the only source of a session's tenant.
package tenants

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophportal/internal/domain"
	"gopkg.in/yaml.v3"
)

var ErrInvalidDirectory = errors.New("invalid tenant directory")

type file struct {
	Tenants []domain.Tenant `yaml:"tenants"`
}

type snapshot struct {
	list    []domain.Tenant
	byCode  map[string]domain.Tenant
	byEmail map[string]domain.Tenant
}

// Directory is safe for concurrent use. Reload swaps the whole content
// atomically; a failed reload leaves the previous content in place.
type Directory struct {
	path string

	mu   sync.RWMutex
	snap snapshot
}

// Parse decodes and validates a directory document.
func Parse(b []byte) (*Directory, error) {
	snap, err := parse(b)
	if err != nil {
		return nil, err
	}
	return &Directory{snap: snap}, nil
}

// Load reads the directory from path. The path is remembered for Reload.
func Load(path string) (*Directory, error) {
	d := &Directory{path: path}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload re-reads the file the directory was loaded from.
func (d *Directory) Reload() error {
	b, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.path, err)
	}
	snap, err := parse(b)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.snap = snap
	d.mu.Unlock()
	return nil
}

func parse(b []byte) (snapshot, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return snapshot{}, fmt.Errorf("%w: %v", ErrInvalidDirectory, err)
	}

	s := snapshot{
		list:    make([]domain.Tenant, 0, len(f.Tenants)),
		byCode:  make(map[string]domain.Tenant, len(f.Tenants)),
		byEmail: make(map[string]domain.Tenant),
	}
	for _, t := range f.Tenants {
		t.Code = strings.TrimSpace(t.Code)
		if t.Code == "" {
			return snapshot{}, fmt.Errorf("%w: tenant without code", ErrInvalidDirectory)
		}
		if _, dup := s.byCode[t.Code]; dup {
			return snapshot{}, fmt.Errorf("%w: duplicate tenant %q", ErrInvalidDirectory, t.Code)
		}
		members := make([]string, 0, len(t.Members))
		for _, m := range t.Members {
			email := normalize(m)
			if email == "" {
				continue
			}
			if other, taken := s.byEmail[email]; taken {
				return snapshot{}, fmt.Errorf("%w: %s is a member of both %q and %q", ErrInvalidDirectory, email, other.Code, t.Code)
			}
			members = append(members, email)
		}
		t.Members = members
		for _, m := range members {
			s.byEmail[m] = t
		}
		s.byCode[t.Code] = t
		s.list = append(s.list, t)
	}
	sort.Slice(s.list, func(i, j int) bool { return s.list[i].Code < s.list[j].Code })
	return s, nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Lookup returns the tenant email belongs to.
func (d *Directory) Lookup(email string) (domain.Tenant, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.snap.byEmail[normalize(email)]
	return t, ok
}

// Get returns the tenant with the given code.
func (d *Directory) Get(code string) (domain.Tenant, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.snap.byCode[code]
	return t, ok
}

// List returns all tenants sorted by code. Member lists are omitted.
func (d *Directory) List() []domain.Tenant {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Tenant, len(d.snap.list))
	for i, t := range d.snap.list {
		t.Members = nil
		out[i] = t
	}
	return out
}

// Members returns every member email across tenants, sorted.
func (d *Directory) Members() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.snap.byEmail))
	for e := range d.snap.byEmail {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
