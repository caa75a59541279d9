// Fig manages a local, git-ignored JSON file of sensitive settings and loads
// it into the environment.
//
// Usage:
//
//	fig --setup                     # create fig.json and add it to .gitignore
//	fig -s -ff secrets.json -gs     # create secrets.json, leave .gitignore alone
//	fig --parse                     # load fig.json into the environment
//	eval "$(fig -p -e --log-level silent)"  # export entries into the calling shell
package main
