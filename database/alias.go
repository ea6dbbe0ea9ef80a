package database

import (
	"fmt"
	"strings"

	nixnet "github.com/LoveWonYoung/nixnet"
	"github.com/LoveWonYoung/nixnet/driver"
)

// Alias maps a short database name to a file.
type Alias struct {
	Name string
	Path string
}

// AddAlias registers alias for the database file at path. defaultBaudRate
// is used for clusters whose file does not define one (FIBEX files do).
func AddAlias(env *nixnet.Env, alias, path string, defaultBaudRate uint64) error {
	if err := driver.ASCII(alias); err != nil {
		return err
	}
	if err := driver.ASCII(path); err != nil {
		return err
	}
	return env.Check(env.Native.DbAddAlias64(alias, path, defaultBaudRate), fmt.Sprintf("nxdbAddAlias64(%q)", alias))
}

func RemoveAlias(env *nixnet.Env, alias string) error {
	if err := driver.ASCII(alias); err != nil {
		return err
	}
	return env.Check(env.Native.DbRemoveAlias(alias), fmt.Sprintf("nxdbRemoveAlias(%q)", alias))
}

// Deploy copies the aliased database to the RT target at ip. With wait
// false it returns the percentage completed so far.
func Deploy(env *nixnet.Env, ip, alias string, wait bool) (uint32, error) {
	if err := driver.ASCII(ip); err != nil {
		return 0, err
	}
	if err := driver.ASCII(alias); err != nil {
		return 0, err
	}
	pct, code := env.Native.DbDeploy(ip, alias, wait)
	if err := env.Check(code, fmt.Sprintf("nxdbDeploy(%q, %q)", ip, alias)); err != nil {
		return 0, err
	}
	return pct, nil
}

func Undeploy(env *nixnet.Env, ip, alias string) error {
	if err := driver.ASCII(ip); err != nil {
		return err
	}
	if err := driver.ASCII(alias); err != nil {
		return err
	}
	return env.Check(env.Native.DbUndeploy(ip, alias), fmt.Sprintf("nxdbUndeploy(%q, %q)", ip, alias))
}

// Aliases lists the aliases known on ip; an empty ip means this host.
func Aliases(env *nixnet.Env, ip string) ([]Alias, error) {
	if err := driver.ASCII(ip); err != nil {
		return nil, err
	}
	as, ps, code := env.Native.DbGetDatabaseListSizes(ip)
	if err := env.Check(code, "nxdbGetDatabaseListSizes"); err != nil {
		return nil, err
	}
	if as == 0 {
		return nil, nil
	}
	abuf := make([]byte, as)
	pbuf := make([]byte, ps)
	_, code = env.Native.DbGetDatabaseList(ip, abuf, pbuf)
	if err := env.Check(code, "nxdbGetDatabaseList"); err != nil {
		return nil, err
	}
	aliasText, err := driver.GoString(abuf)
	if err != nil {
		return nil, err
	}
	pathText, err := driver.GoString(pbuf)
	if err != nil {
		return nil, err
	}
	names := splitList(aliasText)
	paths := splitList(pathText)
	out := make([]Alias, len(names))
	for i, n := range names {
		out[i].Name = n
		if i < len(paths) {
			out[i].Path = paths[i]
		}
	}
	return out, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
