// Package providers initializes and registers all concrete data providers
// with the global provider registry.
package providers

import (
	"os"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/internal/providers/coingecko"
	"github.com/reservelabs/datwatch/internal/providers/defillama"
	"github.com/reservelabs/datwatch/internal/providers/fred"
	"github.com/reservelabs/datwatch/internal/providers/rssnews"
	"github.com/reservelabs/datwatch/internal/providers/sec"
	"github.com/reservelabs/datwatch/internal/providers/yfinance"
)

// RegisterAll creates and registers all available providers with the
// global registry. Providers that require API keys are only registered
// when their environment variable is set.
func RegisterAll() error {
	return RegisterAllTo(provider.Global())
}

// RegisterAllTo registers all available providers to the given registry.
func RegisterAllTo(reg *provider.Registry) error {
	// --- Yahoo Finance (free, no API key) ---
	yf := yfinance.New()
	if err := yf.Init(nil); err != nil {
		return err
	}
	if err := reg.Register(yf); err != nil {
		return err
	}

	// --- CoinGecko (free tier, no API key) ---
	cg := coingecko.New()
	if err := cg.Init(nil); err != nil {
		return err
	}
	if err := reg.Register(cg); err != nil {
		return err
	}

	// --- DefiLlama (free, no API key) ---
	dl := defillama.New()
	if err := dl.Init(nil); err != nil {
		return err
	}
	if err := reg.Register(dl); err != nil {
		return err
	}

	// --- RSS news feeds (free) ---
	news := rssnews.New()
	if err := news.Init(nil); err != nil {
		return err
	}
	if err := reg.Register(news); err != nil {
		return err
	}

	// --- SEC EDGAR (free; a contact User-Agent is requested by their
	// fair-access policy but not enforced for light use) ---
	sp := sec.New()
	creds := map[string]string{}
	if ua := os.Getenv("DATWATCH_PROVIDERS_SEC_USER_AGENT"); ua != "" {
		creds["user_agent"] = ua
	}
	if err := sp.Init(creds); err != nil {
		return err
	}
	if err := reg.Register(sp); err != nil {
		return err
	}

	// --- FRED (requires API key) ---
	if apiKey := os.Getenv("DATWATCH_PROVIDERS_FRED_API_KEY"); apiKey != "" {
		fp := fred.New()
		if err := fp.Init(map[string]string{"api_key": apiKey}); err != nil {
			return err
		}
		if err := reg.Register(fp); err != nil {
			return err
		}
	}

	return nil
}
