package utils

const DefaultBufferSize = 1024 * 256 // card scans are a few hundred KB at most
