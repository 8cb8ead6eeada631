// compileinfoprint is imported by the gsea commands for the side effect of
// printing the compileinfo to os.Stderr
package compileinfoprint

import "github.com/carbocation/gsea/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
