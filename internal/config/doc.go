// Package config provides configuration management for wfkit.
//
// Configuration flows from three sources, in increasing precedence:
//  1. Default constants defined in this package
//  2. The optional .wfkit YAML file (current directory, then home)
//  3. CLI flags parsed by the cmd package
//
// Design decision: We use a single flat Config struct populated by the
// command layer and passed by dependency injection rather than global
// state. The bench and fetch commands share the struct but read disjoint
// field groups; with this few options, splitting into per-command structs
// would add plumbing without benefit.
package config
