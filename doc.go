// Package fig manages a local, git-ignored JSON file of sensitive settings
// and loads those settings into the process environment.
//
// [Setup] creates the file (fig.json by default) if it does not exist and
// makes sure its path is listed in an ignore file (.gitignore by default).
// [Load] and [Parse] read the file, decode it as a flat JSON object and set
// one environment variable per key.
//
// Usage:
//
//	if err := fig.Setup("", "", "", false); err != nil {
//		return err
//	}
//	if err := <-fig.Parse(""); err != nil {
//		return err
//	}
//
// Environment writes go through an [Env]; pass [MapEnv] via [WithEnv] to
// keep the real environment untouched.
package fig
