package umee

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// Unrecognized is the canonical name reported for any discriminant outside the catalog.
const Unrecognized = "unrecognized"

// Code is the explicit discriminant of a variant. Codes are assigned once and
// never reused; 0 is never assigned.
type Code uint16

// Kind separates the two discriminant namespaces.
type Kind uint8

const (
	KindQuery Kind = iota + 1
	KindMsg
)

func (k Kind) String() string {
	switch k {
	case KindQuery:
		return "query"
	case KindMsg:
		return "msg"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// DiscriminantKey is the envelope field holding the code.
func (k Kind) DiscriminantKey() string {
	switch k {
	case KindQuery:
		return "assigned_query"
	case KindMsg:
		return "assigned_msg"
	default:
		return ""
	}
}

// Group is a native module of the umee chain.
type Group uint8

const (
	UnsetGroup Group = iota
	GroupLeverage
	GroupOracle
	GroupIncentive
	GroupMetoken
)

var fromGroup = map[Group]string{
	GroupLeverage:  "leverage",
	GroupOracle:    "oracle",
	GroupIncentive: "incentive",
	GroupMetoken:   "metoken",
}

var toGroup = map[string]Group{
	"leverage":  GroupLeverage,
	"oracle":    GroupOracle,
	"incentive": GroupIncentive,
	"metoken":   GroupMetoken,
}

func (g Group) String() string {
	return fromGroup[g]
}

// ParseGroup resolves the wire name of a group.
func ParseGroup(s string) (Group, bool) {
	g, ok := toGroup[s]
	return g, ok
}

// Variant describes one operation of a native module.
type Variant struct {
	Kind Kind
	Code Code
	// Name is the canonical name and the envelope slot key.
	Name  string
	Group Group
	// Tag is the key of the variant inside its group enum.
	Tag     string
	Payload reflect.Type
	// Response is the type the host answers with. Messages have none: the
	// host reports their outcome through events.
	Response reflect.Type
}

func (v Variant) String() string {
	return fmt.Sprintf("%s %s/%s (%d)", v.Kind, v.Group, v.Name, v.Code)
}

// decodePayload unmarshals raw into a fresh value of the variant's payload type.
func (v Variant) decodePayload(raw []byte) (any, error) {
	ptr := reflect.New(v.Payload)
	if err := json.Unmarshal(raw, ptr.Interface()); err != nil {
		return nil, fmt.Errorf("%s: %w", v.Name, err)
	}
	return ptr.Elem().Interface(), nil
}

func variant[P any, R any](kind Kind, code Code, name string, group Group, tag string) Variant {
	return Variant{
		Kind:     kind,
		Code:     code,
		Name:     name,
		Group:    group,
		Tag:      tag,
		Payload:  reflect.TypeOf((*P)(nil)).Elem(),
		Response: reflect.TypeOf((*R)(nil)).Elem(),
	}
}

func msgVariant[P any](code Code, name string, group Group, tag string) Variant {
	return Variant{
		Kind:    KindMsg,
		Code:    code,
		Name:    name,
		Group:   group,
		Tag:     tag,
		Payload: reflect.TypeOf((*P)(nil)).Elem(),
	}
}

type groupTag struct {
	group Group
	tag   string
}

// Registry is the immutable catalog of one kind. It is built once at package
// initialisation and panics on any discriminant collision.
type Registry struct {
	kind    Kind
	ordered []Variant
	byCode  map[Code]Variant
	byName  map[string]Variant
	byTag   map[groupTag]Variant
	byType  map[reflect.Type]Variant
	retired map[Code]string
}

func newRegistry(kind Kind, variants []Variant, retired map[Code]string) *Registry {
	r := &Registry{
		kind:    kind,
		byCode:  make(map[Code]Variant, len(variants)),
		byName:  make(map[string]Variant, len(variants)),
		byTag:   make(map[groupTag]Variant, len(variants)),
		byType:  make(map[reflect.Type]Variant, len(variants)),
		retired: make(map[Code]string, len(retired)),
	}
	for code, name := range retired {
		r.retired[code] = name
	}
	for _, v := range variants {
		if err := r.add(v); err != nil {
			panic(fmt.Sprintf("umee: invalid %s catalog: %v", kind, err))
		}
	}
	sort.Slice(r.ordered, func(i, j int) bool { return r.ordered[i].Code < r.ordered[j].Code })
	return r
}

func (r *Registry) add(v Variant) error {
	switch {
	case v.Kind != r.kind:
		return fmt.Errorf("%s registered as %s", v, r.kind)
	case v.Code == 0:
		return fmt.Errorf("%s uses the reserved code 0", v)
	case v.Name == "" || v.Name == Unrecognized:
		return fmt.Errorf("variant %d has invalid name %q", v.Code, v.Name)
	case v.Name == r.kind.DiscriminantKey():
		return fmt.Errorf("%s shadows the discriminant key", v)
	case v.Group.String() == "":
		return fmt.Errorf("%s has no group", v)
	}
	if name, ok := r.retired[v.Code]; ok {
		return fmt.Errorf("%s reuses code retired by %q", v, name)
	}
	if prev, ok := r.byCode[v.Code]; ok {
		return fmt.Errorf("code %d assigned to both %q and %q", v.Code, prev.Name, v.Name)
	}
	if prev, ok := r.byName[v.Name]; ok {
		return fmt.Errorf("name %q assigned to both %d and %d", v.Name, prev.Code, v.Code)
	}
	key := groupTag{v.Group, v.Tag}
	if prev, ok := r.byTag[key]; ok {
		return fmt.Errorf("tag %s/%s assigned to both %q and %q", v.Group, v.Tag, prev.Name, v.Name)
	}
	if prev, ok := r.byType[v.Payload]; ok {
		return fmt.Errorf("payload %s assigned to both %q and %q", v.Payload, prev.Name, v.Name)
	}
	r.ordered = append(r.ordered, v)
	r.byCode[v.Code] = v
	r.byName[v.Name] = v
	r.byTag[key] = v
	r.byType[v.Payload] = v
	return nil
}

func (r *Registry) Kind() Kind {
	return r.kind
}

// CanonicalName returns the name assigned to code, or Unrecognized.
func (r *Registry) CanonicalName(code Code) string {
	if v, ok := r.byCode[code]; ok {
		return v.Name
	}
	return Unrecognized
}

func (r *Registry) ByCode(code Code) (Variant, bool) {
	v, ok := r.byCode[code]
	return v, ok
}

func (r *Registry) ByName(name string) (Variant, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// ByTag resolves the second level of a group request.
func (r *Registry) ByTag(group Group, tag string) (Variant, bool) {
	v, ok := r.byTag[groupTag{group, tag}]
	return v, ok
}

// ByPayload resolves the variant a payload value belongs to.
func (r *Registry) ByPayload(payload any) (Variant, bool) {
	if payload == nil {
		return Variant{}, false
	}
	t := reflect.TypeOf(payload)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	v, ok := r.byType[t]
	return v, ok
}

// Retired reports whether code belonged to a variant that has been removed.
func (r *Registry) Retired(code Code) (string, bool) {
	name, ok := r.retired[code]
	return name, ok
}

// All returns the variants ordered by code.
func (r *Registry) All() []Variant {
	out := make([]Variant, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Groups returns the variants of a single group ordered by code.
func (r *Registry) Groups(group Group) []Variant {
	var out []Variant
	for _, v := range r.ordered {
		if v.Group == group {
			out = append(out, v)
		}
	}
	return out
}

var (
	queryRegistry = newRegistry(KindQuery, queryVariants, retiredQueries)
	msgRegistry   = newRegistry(KindMsg, msgVariants, nil)
)

// Queries is the catalog of custom queries.
func Queries() *Registry {
	return queryRegistry
}

// Msgs is the catalog of custom messages.
func Msgs() *Registry {
	return msgRegistry
}

// normalize turns pointer payloads into values so equality and lookups do not
// depend on how the caller built them.
func normalize(payload any) any {
	if payload == nil {
		return nil
	}
	rv := reflect.ValueOf(payload)
	if rv.Kind() != reflect.Ptr {
		return payload
	}
	if rv.IsNil() {
		return reflect.Zero(rv.Type().Elem()).Interface()
	}
	return rv.Elem().Interface()
}
