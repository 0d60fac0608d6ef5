// Package oauth implements the client side of OAuth sign-in against the
// Zentropy API: the static provider registry, pre-flight validation of
// link/unlink requests, and the negotiation engine that carries a sign-in
// through an optional consent decision to a terminal result.
package oauth

// Supported provider names.
const (
	ProviderGoogle    = "google"
	ProviderMicrosoft = "microsoft"
	ProviderGitHub    = "github"
)

// Provider is one registry entry: a supported OAuth identity provider and
// its display metadata. Entries are immutable and process-wide.
type Provider struct {
	Name        string
	DisplayName string
	IconClass   string
	BrandColor  string
}

// DisplayInfo is the presentation projection of a registry entry.
type DisplayInfo struct {
	DisplayName string
	IconClass   string
	BrandColor  string
}

// The catalog, in registration order.
var providers = []Provider{
	{Name: ProviderGoogle, DisplayName: "Google", IconClass: "fab fa-google", BrandColor: "#4285f4"},
	{Name: ProviderMicrosoft, DisplayName: "Microsoft", IconClass: "fab fa-microsoft", BrandColor: "#00a4ef"},
	{Name: ProviderGitHub, DisplayName: "GitHub", IconClass: "fab fa-github", BrandColor: "#333333"},
}

var providerIndex = func() map[string]Provider {
	index := make(map[string]Provider, len(providers))
	for _, p := range providers {
		index[p.Name] = p
	}
	return index
}()

// AvailableProviders returns the full catalog in registration order.
func AvailableProviders() []Provider {
	out := make([]Provider, len(providers))
	copy(out, providers)
	return out
}

// GetProvider looks up a provider by exact name.
func GetProvider(name string) (Provider, bool) {
	p, ok := providerIndex[name]
	return p, ok
}

// IsSupported reports whether the name exists in the registry. Used as a
// guard before any request construction.
func IsSupported(name string) bool {
	_, ok := providerIndex[name]
	return ok
}

// GetDisplayInfo returns presentation metadata for the provider, or nil
// when the name is unknown.
func GetDisplayInfo(name string) *DisplayInfo {
	p, ok := providerIndex[name]
	if !ok {
		return nil
	}
	return &DisplayInfo{DisplayName: p.DisplayName, IconClass: p.IconClass, BrandColor: p.BrandColor}
}
