package calculators

import (
	"math"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// Compile-time assertion that Network implements the NetworkCalculator interface.
var _ estimation.NetworkCalculator = (*Network)(nil)

const (
	recommendInternetGateway = "Internet gateway: required for internet access"
	recommendVPNGateway      = "VPN gateway: site-to-site VPN for hybrid connectivity"
	recommendNATGateway      = "NAT gateway: outbound internet access from private subnets"
	recommendDirectConnect   = "Direct Connect: recommended for this user count or bandwidth"
	considerDirectConnect    = "Direct Connect: consider for larger user counts or high bandwidth requirements"
)

// Network sizes peak bandwidth and prices the network services.
type Network struct {
	rates estimation.NetworkRates
}

// NetworkOption is a functional option for configuring a Network calculator.
type NetworkOption func(*Network)

// WithNetworkRates replaces the network rate table.
func WithNetworkRates(rates estimation.NetworkRates) NetworkOption {
	return func(n *Network) {
		n.rates = rates
	}
}

// WithBandwidth overrides the per-user bandwidth of one user type.
// Negative values and unknown user types are ignored and the rate table is
// kept. Rates files set bandwidth through NetworkRates.BandwidthMbps, which
// Rates.Validate checks instead.
func WithBandwidth(u reference.UserType, mbps float64) NetworkOption {
	return func(n *Network) {
		if mbps < 0 || !u.Valid() {
			return
		}
		bw := make(map[reference.UserType]float64, len(n.rates.BandwidthMbps)+1)
		for k, v := range n.rates.BandwidthMbps {
			bw[k] = v
		}
		bw[u] = mbps
		n.rates.BandwidthMbps = bw
	}
}

// NewNetwork creates a Network calculator with default rates.
func NewNetwork(opts ...NetworkOption) *Network {
	res := Network{
		rates: estimation.DefaultRates().Network,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Estimate sums per-type concurrent bandwidth plus protocol headroom and
// prices the gateways and data transfer. Transfer is billed at one flat rate
// up to TransferCapGB; volume above the cap is not priced.
func (c *Network) Estimate(req estimation.AggregateRequirements) estimation.NetworkEstimate {
	base := 0.0
	for _, b := range req.Breakdown {
		base += float64(b.ConcurrentUsers) * c.rates.BandwidthMbps[b.UserType]
	}

	transferGB := float64(req.TotalConcurrent) * c.rates.DaysPerMonth * c.rates.DailyGBPerUser
	transferCost := math.Min(transferGB*c.rates.TransferPerGB, c.rates.TransferCapGB*c.rates.TransferPerGB)

	costs := estimation.NetworkCosts{
		VPNGateway:   c.rates.VPNGatewayMonthly,
		NATGateway:   c.rates.NATGatewayMonthly,
		DataTransfer: transferCost,
	}
	costs.TotalMonthly = costs.VPNGateway + costs.NATGateway + costs.DataTransfer

	return estimation.NetworkEstimate{
		BaseBandwidthMbps:       base,
		TotalBandwidthMbps:      base * c.rates.OverheadMultiplier,
		EstimatedDataTransferGB: transferGB,
		Costs:                   costs,
		AnnualCost:              annual(costs.TotalMonthly),
		Recommendations:         c.recommendations(req.TotalUsers),
	}
}

func (c *Network) recommendations(totalUsers int) []string {
	direct := considerDirectConnect
	if c.rates.DirectConnectUserThreshold > 0 && totalUsers > c.rates.DirectConnectUserThreshold {
		direct = recommendDirectConnect
	}
	return []string{recommendInternetGateway, recommendVPNGateway, direct, recommendNATGateway}
}
