package graphql

import (
	"errors"

	"chirper/internal/adapters/httpapi/middleware"
	tweetPort "chirper/internal/ports/tweet"
	userPort "chirper/internal/ports/user"

	"github.com/graphql-go/graphql"
)

var errAuthRequired = errors.New("authentication required")

// viewerID extracts the authenticated user from the request context put there
// by the viewer middleware.
func viewerID(p graphql.ResolveParams) (string, error) {
	id, ok := middleware.ViewerFromCtx(p.Context)
	if !ok {
		return "", errAuthRequired
	}
	return id, nil
}

func intArg(p graphql.ResolveParams, name string, def int64) int64 {
	if v, ok := p.Args[name].(int); ok {
		return int64(v)
	}
	return def
}

func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

// buildTypes constructs the object types. User and Tweet reference each other,
// so the cross fields are attached after both objects exist.
func (r *Resolver) buildTypes() (userType, tweetType, authPayload *graphql.Object) {
	userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*userPort.UserDTO).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*userPort.UserDTO).Name, nil
				},
			},
			"bio": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*userPort.UserDTO).Bio, nil
				},
			},
			"username": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*userPort.UserDTO).Username, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*userPort.UserDTO).Email, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*userPort.UserDTO).CreatedAt, nil
				},
			},
			"tweetCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Tweets.CountTweetsByUserID(p.Context, p.Source.(*userPort.UserDTO).ID)
				},
			},
			"followerCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Follows.CountFollowers(p.Context, p.Source.(*userPort.UserDTO).ID)
				},
			},
			"followingCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Follows.CountFollowing(p.Context, p.Source.(*userPort.UserDTO).ID)
				},
			},
			"followedByViewer": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewer, ok := middleware.ViewerFromCtx(p.Context)
					if !ok {
						return false, nil
					}
					return r.Follows.IsFollowing(p.Context, viewer, p.Source.(*userPort.UserDTO).ID)
				},
			},
		},
	})

	tweetType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Tweet",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*tweetPort.TweetDTO).ID, nil
				},
			},
			"content": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*tweetPort.TweetDTO).Content, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*tweetPort.TweetDTO).CreatedAt, nil
				},
			},
			"likeCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Likes.CountByTweetID(p.Context, p.Source.(*tweetPort.TweetDTO).ID)
				},
			},
			"retweetCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Retweets.CountByTweetID(p.Context, p.Source.(*tweetPort.TweetDTO).ID)
				},
			},
			"likedByViewer": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewer, ok := middleware.ViewerFromCtx(p.Context)
					if !ok {
						return false, nil
					}
					return r.Likes.HasLiked(p.Context, viewer, p.Source.(*tweetPort.TweetDTO).ID)
				},
			},
			"retweetedByViewer": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewer, ok := middleware.ViewerFromCtx(p.Context)
					if !ok {
						return false, nil
					}
					return r.Retweets.HasRetweeted(p.Context, viewer, p.Source.(*tweetPort.TweetDTO).ID)
				},
			},
		},
	})

	tweetType.AddFieldConfig("user", &graphql.Field{
		Type: userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			t := p.Source.(*tweetPort.TweetDTO)
			if t.User != nil {
				return t.User, nil
			}
			return r.Users.GetUserByID(p.Context, t.UserID)
		},
	})

	userType.AddFieldConfig("tweets", &graphql.Field{
		Type: graphql.NewList(tweetType),
		Args: graphql.FieldConfigArgument{
			"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
			"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return r.Tweets.GetTweetsByUserID(p.Context, p.Source.(*userPort.UserDTO).ID,
				intArg(p, "offset", 0), intArg(p, "limit", 20))
		},
	})

	userType.AddFieldConfig("followers", &graphql.Field{
		Type: graphql.NewList(userType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return r.Follows.GetFollowersByUserID(p.Context, p.Source.(*userPort.UserDTO).ID)
		},
	})

	userType.AddFieldConfig("following", &graphql.Field{
		Type: graphql.NewList(userType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return r.Follows.GetFollowingByUserID(p.Context, p.Source.(*userPort.UserDTO).ID)
		},
	})

	authPayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*userPort.LoginResponse).Token, nil
				},
			},
			"expiresAt": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*userPort.LoginResponse).ExpiresAt, nil
				},
			},
		},
	})

	return userType, tweetType, authPayload
}
