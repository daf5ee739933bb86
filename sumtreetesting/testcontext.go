package sumtreetesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestConfig struct {
	// The RNG is seeded from Seed. It is normal to force it to some fixed value
	// so that the generated leaves are the same from run to run.
	Seed            int64
	TestLabelPrefix string
	// MaxSum bounds randomly generated sums, exclusive. Defaults to 1<<32.
	MaxSum int64
}

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	Cfg TestConfig

	rng *rand.Rand
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:   t,
		Cfg: cfg,
	}
	if c.Cfg.MaxSum <= 0 {
		c.Cfg.MaxSum = 1 << 32
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	c.rng = rand.New(rand.NewSource(cfg.Seed))
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
