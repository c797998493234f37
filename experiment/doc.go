// Package experiment runs repair campaigns and compares policies.
//
// Prepare turns a config.Config into a damaged network.Network, Policies
// resolves the configured repair policies, and a Runner drives each policy
// tick by tick, sampling the source-to-sink max flow at regular intervals.
// Compare runs several policies concurrently, each on its own clone of the
// same damaged network, so every policy faces identical damage.
package experiment
