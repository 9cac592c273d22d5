// Package groups models users organized into nested groups and answers
// membership questions about them.
package groups

// Group is a named set of users and subgroups.  A user belongs to a group if
// the group lists the user directly, or if any subgroup does, to any depth.
type Group struct {
	name   string
	groups []*Group
	users  []string
}

// New returns an empty group.
func New(name string) *Group {
	return &Group{name: name}
}

// Name returns the group's name.
func (g *Group) Name() string {
	return g.name
}

// AddGroup adds a subgroup.
func (g *Group) AddGroup(sub *Group) {
	if sub != nil {
		g.groups = append(g.groups, sub)
	}
}

// AddUser adds a user directly to this group.
func (g *Group) AddUser(user string) {
	g.users = append(g.users, user)
}

// Groups returns the direct subgroups.
func (g *Group) Groups() []*Group {
	return g.groups
}

// Users returns the users added directly to this group.
func (g *Group) Users() []string {
	return g.users
}

// IsUserInGroup reports whether user belongs to group, directly or through
// any chain of subgroups.  A nil group has no members.  Groups may contain
// each other in a cycle; each group is examined at most once.
func IsUserInGroup(user string, group *Group) bool {
	if group == nil {
		return false
	}

	seen := map[*Group]struct{}{group: {}}
	queue := []*Group{group}
	for len(queue) != 0 {
		g := queue[0]
		queue = queue[1:]

		for _, u := range g.users {
			if u == user {
				return true
			}
		}
		for _, sub := range g.groups {
			if _, found := seen[sub]; !found {
				seen[sub] = struct{}{}
				queue = append(queue, sub)
			}
		}
	}
	return false
}
