package graphql

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema for the API: queries for profiles,
// tweets and the timeline, mutations for the whole write surface.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType, tweetType, authPayload := r.buildTypes()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewer, err := viewerID(p)
					if err != nil {
						return nil, err
					}
					return r.Users.GetUserByID(p.Context, viewer)
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Users.GetUserByUsername(p.Context, stringArg(p, "username"))
				},
			},
			"tweet": &graphql.Field{
				Type: tweetType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Tweets.GetTweetByID(p.Context, stringArg(p, "id"))
				},
			},
			"tweetsByUser": &graphql.Field{
				Type: graphql.NewList(tweetType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Tweets.GetTweetsByUserID(p.Context, stringArg(p, "userId"),
						intArg(p, "offset", 0), intArg(p, "limit", 20))
				},
			},
			"timeline": &graphql.Field{
				Type: graphql.NewList(tweetType),
				Args: graphql.FieldConfigArgument{
					"start": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewer, err := viewerID(p)
					if err != nil {
						return nil, err
					}
					return r.Timeline.GetTimelineByUserID(p.Context, viewer,
						intArg(p, "start", 0), intArg(p, "limit", 20))
				},
			},
			"followers": &graphql.Field{
				Type: graphql.NewList(userType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Follows.GetFollowersByUserID(p.Context, stringArg(p, "userId"))
				},
			},
			"following": &graphql.Field{
				Type: graphql.NewList(userType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Follows.GetFollowingByUserID(p.Context, stringArg(p, "userId"))
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Users.RegisterUser(p.Context, stringArg(p, "name"),
						stringArg(p, "username"), stringArg(p, "email"), stringArg(p, "password"))
				},
			},
			"login": &graphql.Field{
				Type: authPayload,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Users.LoginUser(p.Context, stringArg(p, "username"), stringArg(p, "password"))
				},
			},
			"updateProfile": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"bio":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewer, err := viewerID(p)
					if err != nil {
						return nil, err
					}
					// Leaving bio out keeps the stored one; only an explicit
					// argument overwrites it.
					bio, ok := p.Args["bio"].(string)
					if !ok {
						current, err := r.Users.GetUserByID(p.Context, viewer)
						if err != nil {
							return nil, err
						}
						bio = current.Bio
					}
					return r.Users.UpdateProfile(p.Context, viewer, stringArg(p, "name"), bio)
				},
			},
			"createTweet": &graphql.Field{
				Type: tweetType,
				Args: graphql.FieldConfigArgument{
					"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewer, err := viewerID(p)
					if err != nil {
						return nil, err
					}
					return r.Tweets.CreateTweet(p.Context, stringArg(p, "content"), viewer)
				},
			},
			"deleteTweet": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewer, err := viewerID(p)
					if err != nil {
						return nil, err
					}
					if err := r.Tweets.DeleteTweet(p.Context, stringArg(p, "id"), viewer); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"follow": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewer, err := viewerID(p)
					if err != nil {
						return nil, err
					}
					if err := r.Follows.FollowUser(p.Context, viewer, stringArg(p, "userId")); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"unfollow": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewer, err := viewerID(p)
					if err != nil {
						return nil, err
					}
					if err := r.Follows.UnfollowUser(p.Context, viewer, stringArg(p, "userId")); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"like":      r.tweetEdgeMutation(tweetType, func(p graphql.ResolveParams, viewer, tweetID string) error { return r.Likes.LikeTweet(p.Context, viewer, tweetID) }),
			"unlike":    r.tweetEdgeMutation(tweetType, func(p graphql.ResolveParams, viewer, tweetID string) error { return r.Likes.UnlikeTweet(p.Context, viewer, tweetID) }),
			"retweet":   r.tweetEdgeMutation(tweetType, func(p graphql.ResolveParams, viewer, tweetID string) error { return r.Retweets.RetweetTweet(p.Context, viewer, tweetID) }),
			"unretweet": r.tweetEdgeMutation(tweetType, func(p graphql.ResolveParams, viewer, tweetID string) error { return r.Retweets.UnretweetTweet(p.Context, viewer, tweetID) }),
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// tweetEdgeMutation is the shared shape of like/unlike/retweet/unretweet:
// apply the edge change, then return the tweet so clients refetch counts in
// the same round trip.
func (r *Resolver) tweetEdgeMutation(tweetType *graphql.Object, apply func(p graphql.ResolveParams, viewer, tweetID string) error) *graphql.Field {
	return &graphql.Field{
		Type: tweetType,
		Args: graphql.FieldConfigArgument{
			"tweetId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			viewer, err := viewerID(p)
			if err != nil {
				return nil, err
			}
			tweetID := stringArg(p, "tweetId")
			if err := apply(p, viewer, tweetID); err != nil {
				return nil, err
			}
			return r.Tweets.GetTweetByID(p.Context, tweetID)
		},
	}
}
