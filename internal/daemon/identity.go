package daemon

import (
	"os/user"
	"strconv"

	"github.com/pkg/errors"
)

// Identity is the resolved user/group a daemon runs as. The zero value
// means "run as the invoking user".
type Identity struct {
	UID    int
	GID    int
	HasUID bool
	HasGID bool
	Home   string
}

// ResolveIdentity looks up the configured user and group names. An
// unresolvable name fails the start of that daemon only; it never
// aborts the whole command.
func ResolveIdentity(userName, groupName string) (Identity, error) {
	var id Identity

	if userName != "" {
		u, err := user.Lookup(userName)
		if err != nil {
			return id, errors.Wrapf(err, "unknown user %q", userName)
		}
		uid, err := strconv.Atoi(u.Uid)
		if err != nil {
			return id, errors.Wrapf(err, "non-numeric uid for user %q", userName)
		}
		gid, err := strconv.Atoi(u.Gid)
		if err != nil {
			return id, errors.Wrapf(err, "non-numeric gid for user %q", userName)
		}
		id.UID, id.HasUID = uid, true
		id.GID, id.HasGID = gid, true
		id.Home = u.HomeDir
	}

	if groupName != "" {
		g, err := user.LookupGroup(groupName)
		if err != nil {
			return id, errors.Wrapf(err, "unknown group %q", groupName)
		}
		gid, err := strconv.Atoi(g.Gid)
		if err != nil {
			return id, errors.Wrapf(err, "non-numeric gid for group %q", groupName)
		}
		id.GID, id.HasGID = gid, true
	}

	return id, nil
}
