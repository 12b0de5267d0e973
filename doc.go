// SPDX-License-Identifier: Unlicense OR MIT

/*
Package kas provides the identity and window-action vocabulary shared by
the toolkit's packages.

Widgets are identified by a WidgetID assigned during configuration by a
pre-order walk over the widget tree (see package event). Every widget
embeds a CoreData which stores its identifier, the extent of its subtree
in identifier space and its assigned screen rectangle.

Window-level consequences of event handling accumulate in an Action
bit-set which the shell drains after each dispatch.
*/
package kas
