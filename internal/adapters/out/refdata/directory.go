// Package refdata serves the read-only reference data of the order desk: the
// business profile, the menu and the delivery agents. The defaults are
// embedded in the binary; a YAML file with the same layout can replace them.
package refdata

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"orderdesk/internal/core/domain/model/agent"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/vendor"
	"orderdesk/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed refdata.yaml
var defaultDocument []byte

type document struct {
	Business businessDTO `yaml:"business"`
	Menu     []itemDTO   `yaml:"menu"`
	Agents   []agentDTO  `yaml:"agents"`
}

type businessDTO struct {
	Name     string `yaml:"name"`
	Owner    string `yaml:"owner"`
	Contact  string `yaml:"contact"`
	Location string `yaml:"location"`
	MapLink  string `yaml:"map_link"`
	Hours    string `yaml:"hours"`
	Currency string `yaml:"currency"`
}

type itemDTO struct {
	SKU       string  `yaml:"sku"`
	Name      string  `yaml:"name"`
	Price     float64 `yaml:"price"`
	Unit      string  `yaml:"unit"`
	Available bool    `yaml:"available"`
}

type agentDTO struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Contact string `yaml:"contact"`
}

// Directory implements ports.Catalog, ports.AgentDirectory and
// ports.BusinessDirectory. It is immutable after loading and safe for
// concurrent use.
type Directory struct {
	profile    vendor.Profile
	menu       []catalog.Item
	agents     []*agent.Agent
	agentsByID map[string]*agent.Agent
}

// LoadDefault parses the embedded reference data.
func LoadDefault() (*Directory, error) {
	return Parse(defaultDocument)
}

// LoadFile parses reference data from path.
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	return Parse(data)
}

// Parse builds a Directory from YAML, validating every entry. SKUs and agent
// ids must be unique and the menu must not be empty.
func Parse(data []byte) (*Directory, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode reference data: %w", err)
	}

	b := doc.Business
	profile, err := vendor.NewProfile(b.Name, b.Owner, b.Contact, b.Location, b.MapLink, b.Hours, b.Currency)
	if err != nil {
		return nil, fmt.Errorf("business: %w", err)
	}

	if len(doc.Menu) == 0 {
		return nil, errs.NewValueIsRequiredError("menu")
	}

	d := &Directory{
		profile:    profile,
		menu:       make([]catalog.Item, 0, len(doc.Menu)),
		agents:     make([]*agent.Agent, 0, len(doc.Agents)),
		agentsByID: make(map[string]*agent.Agent, len(doc.Agents)),
	}

	seenSKU := make(map[string]struct{}, len(doc.Menu))
	for i, m := range doc.Menu {
		item, err := catalog.NewItem(m.SKU, m.Name, m.Price, m.Unit, m.Available)
		if err != nil {
			return nil, fmt.Errorf("menu[%d]: %w", i, err)
		}
		if _, dup := seenSKU[item.SKU()]; dup {
			return nil, fmt.Errorf("menu[%d]: duplicate sku %q", i, item.SKU())
		}
		seenSKU[item.SKU()] = struct{}{}
		d.menu = append(d.menu, item)
	}

	for i, a := range doc.Agents {
		ag, err := agent.NewAgent(a.ID, a.Name, a.Contact)
		if err != nil {
			return nil, fmt.Errorf("agents[%d]: %w", i, err)
		}
		if _, dup := d.agentsByID[ag.ID()]; dup {
			return nil, fmt.Errorf("agents[%d]: duplicate id %q", i, ag.ID())
		}
		d.agentsByID[ag.ID()] = ag
		d.agents = append(d.agents, ag)
	}

	return d, nil
}

func (d *Directory) Profile(_ context.Context) (vendor.Profile, error) {
	return d.profile, nil
}

// ListAll returns the menu in file order.
func (d *Directory) ListAll(_ context.Context) ([]catalog.Item, error) {
	items := make([]catalog.Item, len(d.menu))
	copy(items, d.menu)
	return items, nil
}

func (d *Directory) Get(_ context.Context, id string) (*agent.Agent, error) {
	a, ok := d.agentsByID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("agent_id", id)
	}
	return a, nil
}

// List returns agents in file order.
func (d *Directory) List(_ context.Context) ([]*agent.Agent, error) {
	agents := make([]*agent.Agent, len(d.agents))
	copy(agents, d.agents)
	return agents, nil
}
