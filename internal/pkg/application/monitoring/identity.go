package monitoring

import (
	"strings"

	"github.com/vineetparikh-rph/temprx360/pkg/types"
)

// ResolveSite maps a provider display name to a known site by scanning for
// site codes embedded in the free text. When several codes match, the longest
// one wins so that overlapping codes (GS vs GSP) resolve to the most specific
// site. Returns nil when no code is found.
func ResolveSite(providerName string, sites []types.Site) *types.Site {
	name := normalizeName(providerName)
	if name == "" {
		return nil
	}

	var match *types.Site

	for i := range sites {
		code := sites[i].Code
		if code == "" || !strings.Contains(name, code) {
			continue
		}
		if match == nil || len(code) > len(match.Code) {
			match = &sites[i]
		}
	}

	return match
}

// ResolveGateway pairs a site with its gateway by looking for the provider's
// naming convention, "<CODE>-Gateway" or "<CODE> Gateway". The binding is only
// made when exactly one gateway matches; anything else leaves the sensor
// without a gateway reference, which is a normal state rather than an error.
func ResolveGateway(site types.Site, gateways map[string]types.ProviderGatewayRecord) *types.ProviderGatewayRecord {
	if site.Code == "" {
		return nil
	}

	patterns := []string{
		site.Code + "-Gateway",
		site.Code + " Gateway",
	}

	var match *types.ProviderGatewayRecord
	matches := 0

	for id := range gateways {
		gw := gateways[id]
		name := normalizeName(gw.Name)

		for _, p := range patterns {
			if strings.Contains(name, p) {
				match = &gw
				matches++
				break
			}
		}
	}

	if matches != 1 {
		return nil
	}

	return match
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}
