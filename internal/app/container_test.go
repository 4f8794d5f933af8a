package app

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/statframes/internal/config"
	"github.com/nfrund/statframes/internal/domain"
	"github.com/nfrund/statframes/internal/frame"
	"github.com/nfrund/statframes/internal/pubsub"
	"github.com/nfrund/statframes/internal/rendering"
	"github.com/nfrund/statframes/internal/upstream"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppURL:          "http://localhost:3000",
		AirstackAPIKey:  "key",
		AirstackURL:     "https://api.airstack.xyz/gql",
		Variant:         "masks",
		UpstreamTimeout: time.Second,
		RateLimit:       10,
	}
}

func TestNewContainer(t *testing.T) {
	i := NewContainer(testConfig(), afero.NewMemMapFs())
	t.Cleanup(func() { Close(context.Background(), i) })

	catalog, err := do.Invoke[*frame.Catalog](i)
	require.NoError(t, err)
	assert.Equal(t, "masks", catalog.Default().Name)

	_, err = do.Invoke[*frame.Builder](i)
	assert.NoError(t, err)
	_, err = do.Invoke[domain.ProfileFetcher](i)
	assert.NoError(t, err)
	_, err = do.Invoke[rendering.Renderer](i)
	assert.NoError(t, err)
	token, err := do.Invoke[upstream.InternalToken](i)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	pub := do.MustInvoke[pubsub.Publisher](i)
	sub := do.MustInvoke[pubsub.Subscriber](i)
	assert.Same(t, pub, sub, "publisher and subscriber share one bus")
}

func TestNewContainer_VariantsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/variants.yaml", []byte(`
variants:
  - name: degen
    title: Degen Stats
    endpoints: ["https://stats.example/degen?fid={fid}"]
    tiles:
      - {label: Points, kind: counter, key: points}
`), 0o644))

	cfg := testConfig()
	cfg.VariantsFile = "/etc/variants.yaml"
	cfg.Variant = "degen"

	i := NewContainer(cfg, fs)
	catalog, err := do.Invoke[*frame.Catalog](i)
	require.NoError(t, err)
	assert.Equal(t, "degen", catalog.Default().Name)
	assert.Equal(t, []string{"degen", "masks"}, catalog.Names())
}

func TestNewModules(t *testing.T) {
	names := map[string]bool{}
	for _, m := range NewModules() {
		names[m.Name()] = true
	}
	assert.Equal(t, map[string]bool{"farscore": true, "frames": true, "activity": true}, names)
}
