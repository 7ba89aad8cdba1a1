package qrcode

// An Option tunes an encoder entry point beyond its required payload
// and minimum error correction level. The defaults, set by
// newEncodeConfig rather than by encodeConfig's zero value, are the full
// version range, automatic mask selection, and ecc boosting enabled.
type Option func(*encodeConfig)

type encodeConfig struct {
	minVersion, maxVersion int
	mask                   int
	boostEcl               bool
}

func newEncodeConfig() encodeConfig {
	return encodeConfig{minVersion: 1, maxVersion: 40, mask: -1, boostEcl: true}
}

// WithVersionRange restricts version search to [minVersion, maxVersion],
// both inclusive. Both bounds must be in [1, 40] with minVersion <=
// maxVersion; violating that yields an *InvalidArgumentError from the
// encoder entry point rather than from this option itself.
func WithVersionRange(minVersion, maxVersion int) Option {
	return func(c *encodeConfig) {
		c.minVersion, c.maxVersion = minVersion, maxVersion
	}
}

// WithMask forces a specific mask pattern, in [0, 7], instead of
// selecting the one with the lowest penalty score. Passing -1 (the
// default) restores automatic selection.
func WithMask(mask int) Option {
	return func(c *encodeConfig) { c.mask = mask }
}

// WithBoostEcl controls whether the encoder raises the error
// correction level above the requested minimum when the chosen
// version has room to spare, without needing a larger symbol. It
// defaults to true.
func WithBoostEcl(boost bool) Option {
	return func(c *encodeConfig) { c.boostEcl = boost }
}
