package echarts

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithHeight sets the CSS height of every chart.
func WithHeight(height string) Option {
	return func(r *Renderer) {
		if height != "" {
			r.height = height
		}
	}
}

// WithAssetsHost overrides where the echarts script is loaded from.
func WithAssetsHost(host string) Option {
	return func(r *Renderer) {
		if host != "" {
			r.assetsHost = host
		}
	}
}
