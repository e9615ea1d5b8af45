package publishing

// Each flag has a typed setter and a text setter.
// The text setters treat exactly "true" as true and any other text as false.

func parseFlag(text string) bool {
	return text == "true"
}

func (config *PublishingConfig) SetCreateSignatures(createSignatures bool) {
	config.createSignatures = createSignatures
}

func (config *PublishingConfig) SetCreateSignaturesText(text string) {
	config.createSignatures = parseFlag(text)
}

func (config *PublishingConfig) CreateSignatures() bool {
	return config.createSignatures
}

func (config *PublishingConfig) SetSignJars(signJars bool) {
	config.signJars = signJars
}

func (config *PublishingConfig) SetSignJarsText(text string) {
	config.signJars = parseFlag(text)
}

func (config *PublishingConfig) SignJars() bool {
	return config.signJars
}

func (config *PublishingConfig) SetPackJars(packJars bool) {
	config.packJars = packJars
}

func (config *PublishingConfig) SetPackJarsText(text string) {
	config.packJars = parseFlag(text)
}

func (config *PublishingConfig) PackJars() bool {
	return config.packJars
}

func (config *PublishingConfig) SetFailOnInconsistentJars(fail bool) {
	config.failOnInconsistentJars = fail
}

func (config *PublishingConfig) SetFailOnInconsistentJarsText(text string) {
	config.failOnInconsistentJars = parseFlag(text)
}

func (config *PublishingConfig) FailOnInconsistentJars() bool {
	return config.failOnInconsistentJars
}
