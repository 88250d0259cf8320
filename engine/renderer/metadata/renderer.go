package metadata

/** @brief Configuration handed to a backend on initialization. */
type RendererBackendConfig struct {
	/** @brief The name of the application */
	ApplicationName string
	/** @brief Framebuffer width in pixels. */
	Width uint32
	/** @brief Framebuffer height in pixels. */
	Height uint32
	/**
	 * @brief Software backend only: number of availability polls a finished
	 * query needs before it reports available. Zero completes immediately.
	 */
	QueryLatency uint32
}
